package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	Update(ctx context.Context, room *domain.Room) error
	UpdateStatus(ctx context.Context, roomID int64, status domain.RoomStatus) error
	Delete(ctx context.Context, roomID int64) error
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	GetByNumber(ctx context.Context, number string) (*domain.Room, error)
	List(ctx context.Context) ([]domain.Room, error)
}

type PGRoomRepository struct {
	db *pgxpool.Pool
}

func NewRoomRepository(db *pgxpool.Pool) RoomRepository {
	return &PGRoomRepository{db: db}
}

const roomColumns = `id, room_number, room_type, price_cents, status, created_at, updated_at`

func (r *PGRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	return r.db.QueryRow(ctx, `INSERT INTO rooms (room_number, room_type, price_cents, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		room.Number, room.Type, room.PriceCents, room.Status).
		Scan(&room.ID, &room.CreatedAt, &room.UpdatedAt)
}

func (r *PGRoomRepository) Update(ctx context.Context, room *domain.Room) error {
	row := r.db.QueryRow(ctx, `UPDATE rooms SET room_number=$1, room_type=$2, price_cents=$3, status=$4, updated_at=now() WHERE id=$5 RETURNING updated_at`,
		room.Number, room.Type, room.PriceCents, room.Status, room.ID)
	if err := row.Scan(&room.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrRoomNotFound
		}
		return err
	}
	return nil
}

func (r *PGRoomRepository) UpdateStatus(ctx context.Context, roomID int64, status domain.RoomStatus) error {
	cmd, err := r.db.Exec(ctx, `UPDATE rooms SET status=$1, updated_at=now() WHERE id=$2`, status, roomID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

func (r *PGRoomRepository) Delete(ctx context.Context, roomID int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id=$1`, roomID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

func (r *PGRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	return r.queryOne(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id=$1`, id)
}

func (r *PGRoomRepository) GetByNumber(ctx context.Context, number string) (*domain.Room, error) {
	return r.queryOne(ctx, `SELECT `+roomColumns+` FROM rooms WHERE room_number=$1`, number)
}

func (r *PGRoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	rows, err := r.db.Query(ctx, `SELECT `+roomColumns+` FROM rooms ORDER BY room_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := make([]domain.Room, 0)
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(&room.ID, &room.Number, &room.Type, &room.PriceCents, &room.Status, &room.CreatedAt, &room.UpdatedAt); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

func (r *PGRoomRepository) queryOne(ctx context.Context, query string, arg interface{}) (*domain.Room, error) {
	row := r.db.QueryRow(ctx, query, arg)
	var room domain.Room
	if err := row.Scan(&room.ID, &room.Number, &room.Type, &room.PriceCents, &room.Status, &room.CreatedAt, &room.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

var _ RoomRepository = (*PGRoomRepository)(nil)
