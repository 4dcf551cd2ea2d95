package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	Update(ctx context.Context, payment *domain.Payment) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	List(ctx context.Context) ([]domain.Payment, error)
	ListByReservation(ctx context.Context, reservationID int64) ([]domain.Payment, error)
}

type PGPaymentRepository struct {
	db *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) PaymentRepository {
	return &PGPaymentRepository{db: db}
}

const paymentColumns = `id, reservation_id, amount_cents, method, paid_at`

func (r *PGPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	return r.db.QueryRow(ctx, `INSERT INTO payments (reservation_id, amount_cents, method, paid_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		payment.ReservationID, payment.AmountCents, payment.Method, payment.PaidAt).
		Scan(&payment.ID)
}

func (r *PGPaymentRepository) Update(ctx context.Context, payment *domain.Payment) error {
	cmd, err := r.db.Exec(ctx, `UPDATE payments SET amount_cents=$1, method=$2 WHERE id=$3`,
		payment.AmountCents, payment.Method, payment.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrPaymentNotFound
	}
	return nil
}

func (r *PGPaymentRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM payments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrPaymentNotFound
	}
	return nil
}

func (r *PGPaymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	row := r.db.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id=$1`, id)
	var p domain.Payment
	if err := row.Scan(&p.ID, &p.ReservationID, &p.AmountCents, &p.Method, &p.PaidAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGPaymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	return r.queryMany(ctx, `SELECT `+paymentColumns+` FROM payments ORDER BY paid_at, id`)
}

func (r *PGPaymentRepository) ListByReservation(ctx context.Context, reservationID int64) ([]domain.Payment, error) {
	return r.queryMany(ctx, `SELECT `+paymentColumns+` FROM payments WHERE reservation_id=$1 ORDER BY paid_at, id`, reservationID)
}

func (r *PGPaymentRepository) queryMany(ctx context.Context, query string, args ...interface{}) ([]domain.Payment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]domain.Payment, 0)
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.ReservationID, &p.AmountCents, &p.Method, &p.PaidAt); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

var _ PaymentRepository = (*PGPaymentRepository)(nil)
