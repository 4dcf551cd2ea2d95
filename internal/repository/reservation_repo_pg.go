package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepository interface {
	Save(ctx context.Context, reservation *domain.Reservation) error
	Update(ctx context.Context, reservation *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	List(ctx context.Context) ([]domain.Reservation, error)
	ListByRoom(ctx context.Context, roomID int64) ([]domain.Reservation, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Reservation, error)
	FindOverlapping(ctx context.Context, roomID int64, checkIn, checkOut time.Time, excludeID *int64) ([]domain.Reservation, error)
	HasActiveByRoom(ctx context.Context, roomID int64) (bool, error)
}

type PGReservationRepository struct {
	db *pgxpool.Pool
}

func NewReservationRepository(db *pgxpool.Pool) ReservationRepository {
	return &PGReservationRepository{db: db}
}

const reservationColumns = `id, customer_id, room_id, confirmation_code, check_in_date, check_out_date, guests, status, created_at, updated_at`

func (r *PGReservationRepository) Save(ctx context.Context, reservation *domain.Reservation) error {
	return r.db.QueryRow(ctx, `INSERT INTO reservations (customer_id, room_id, confirmation_code, check_in_date, check_out_date, guests, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		reservation.CustomerID, reservation.RoomID, reservation.ConfirmationCode, reservation.CheckIn, reservation.CheckOut, reservation.Guests, reservation.Status).
		Scan(&reservation.ID, &reservation.CreatedAt, &reservation.UpdatedAt)
}

func (r *PGReservationRepository) Update(ctx context.Context, reservation *domain.Reservation) error {
	row := r.db.QueryRow(ctx, `UPDATE reservations SET customer_id=$1, room_id=$2, check_in_date=$3, check_out_date=$4, guests=$5, status=$6, updated_at=now() WHERE id=$7 RETURNING updated_at`,
		reservation.CustomerID, reservation.RoomID, reservation.CheckIn, reservation.CheckOut, reservation.Guests, reservation.Status, reservation.ID)
	if err := row.Scan(&reservation.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrReservationNotFound
		}
		return err
	}
	return nil
}

func (r *PGReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	row := r.db.QueryRow(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id=$1`, id)
	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, err
	}
	return res, nil
}

func (r *PGReservationRepository) List(ctx context.Context) ([]domain.Reservation, error) {
	return r.queryMany(ctx, `SELECT `+reservationColumns+` FROM reservations ORDER BY check_in_date, id`)
}

func (r *PGReservationRepository) ListByRoom(ctx context.Context, roomID int64) ([]domain.Reservation, error) {
	return r.queryMany(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE room_id=$1 ORDER BY check_in_date, id`, roomID)
}

func (r *PGReservationRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Reservation, error) {
	return r.queryMany(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE customer_id=$1 ORDER BY check_in_date, id`, customerID)
}

// FindOverlapping returns non-cancelled reservations for the room whose
// half-open [check_in, check_out) range intersects [checkIn, checkOut).
// COMPLETED rows still participate; only CANCELLED rows are ignored.
func (r *PGReservationRepository) FindOverlapping(ctx context.Context, roomID int64, checkIn, checkOut time.Time, excludeID *int64) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations
		WHERE room_id=$1 AND status <> $2 AND check_in_date < $3 AND check_out_date > $4`
	args := []interface{}{roomID, domain.ReservationStatusCancelled, checkOut, checkIn}
	if excludeID != nil {
		query += ` AND id <> $5`
		args = append(args, *excludeID)
	}
	return r.queryMany(ctx, query, args...)
}

func (r *PGReservationRepository) HasActiveByRoom(ctx context.Context, roomID int64) (bool, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM reservations WHERE room_id=$1 AND status = ANY($2)`,
		roomID, []string{string(domain.ReservationStatusBooked), string(domain.ReservationStatusCheckedIn)}).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PGReservationRepository) queryMany(ctx context.Context, query string, args ...interface{}) ([]domain.Reservation, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := make([]domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, *res)
	}
	return reservations, rows.Err()
}

func scanReservation(row pgx.Row) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := row.Scan(&res.ID, &res.CustomerID, &res.RoomID, &res.ConfirmationCode, &res.CheckIn, &res.CheckOut, &res.Guests, &res.Status, &res.CreatedAt, &res.UpdatedAt); err != nil {
		return nil, err
	}
	return &res, nil
}

var _ ReservationRepository = (*PGReservationRepository)(nil)
