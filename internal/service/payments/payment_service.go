package payments

import (
	"context"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/repository"
)

type PaymentUseCase interface {
	Record(ctx context.Context, input PaymentInput) (*domain.Payment, error)
	Update(ctx context.Context, id int64, amountCents int64, method domain.PaymentMethod) (*domain.Payment, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	List(ctx context.Context) ([]domain.Payment, error)
	ListByReservation(ctx context.Context, reservationID int64) ([]domain.Payment, error)
}

type ReservationLookup interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

type PaymentInput struct {
	ReservationID int64                `json:"reservation_id"`
	AmountCents   int64                `json:"amount_cents"`
	Method        domain.PaymentMethod `json:"method"`
}

type PaymentService struct {
	repo         repository.PaymentRepository
	reservations ReservationLookup
	now          func() time.Time
}

func NewPaymentService(repo repository.PaymentRepository, reservations ReservationLookup) *PaymentService {
	return &PaymentService{repo: repo, reservations: reservations, now: time.Now}
}

// Record books a payment against an existing reservation. The payment
// layer only needs the reservation to exist; it does not inspect status.
func (s *PaymentService) Record(ctx context.Context, input PaymentInput) (*domain.Payment, error) {
	if _, err := s.reservations.GetByID(ctx, input.ReservationID); err != nil {
		return nil, err
	}
	if input.AmountCents <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if !domain.ValidPaymentMethod(input.Method) {
		return nil, domain.ErrInvalidPaymentMethod
	}

	payment := &domain.Payment{
		ReservationID: input.ReservationID,
		AmountCents:   input.AmountCents,
		Method:        input.Method,
		PaidAt:        s.now(),
	}
	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *PaymentService) Update(ctx context.Context, id int64, amountCents int64, method domain.PaymentMethod) (*domain.Payment, error) {
	payment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if amountCents <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if !domain.ValidPaymentMethod(method) {
		return nil, domain.ErrInvalidPaymentMethod
	}

	payment.AmountCents = amountCents
	payment.Method = method
	if err := s.repo.Update(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *PaymentService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *PaymentService) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PaymentService) List(ctx context.Context) ([]domain.Payment, error) {
	return s.repo.List(ctx)
}

func (s *PaymentService) ListByReservation(ctx context.Context, reservationID int64) ([]domain.Payment, error) {
	return s.repo.ListByReservation(ctx, reservationID)
}

var _ PaymentUseCase = (*PaymentService)(nil)
