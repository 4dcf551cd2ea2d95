package reservation

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/kafka"
	"github.com/Domenick1991/hotelbooking/internal/repository"
	"github.com/google/uuid"
)

type ReservationUseCase interface {
	Create(ctx context.Context, input ReservationInput) (*domain.Reservation, error)
	Update(ctx context.Context, id int64, input ReservationInput) (*domain.Reservation, error)
	Cancel(ctx context.Context, id int64) (*domain.Reservation, error)
	CheckIn(ctx context.Context, id int64) (*domain.Reservation, error)
	CheckOut(ctx context.Context, id int64) (*domain.Reservation, error)
	Validate(ctx context.Context, excludeID *int64, customerID, roomID int64, checkIn, checkOut time.Time) error
	AvailableRooms(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Room, error)
	List(ctx context.Context) ([]domain.Reservation, error)
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Reservation, error)
	ListByRoom(ctx context.Context, roomID int64) ([]domain.Reservation, error)
	SyncAllRooms(ctx context.Context) (int, error)
}

type Cache interface {
	AcquireRoomLock(ctx context.Context, roomID int64, ttl time.Duration) (bool, error)
	ReleaseRoomLock(ctx context.Context, roomID int64) error
	InvalidateRooms(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// ReservationInput carries the caller-supplied fields of a reservation.
// Update overwrites all of them, so create and update share the shape.
type ReservationInput struct {
	CustomerID int64     `json:"customer_id"`
	RoomID     int64     `json:"room_id"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	Guests     int       `json:"guests"`
}

type ReservationService struct {
	reservations       repository.ReservationRepository
	rooms              repository.RoomRepository
	cache              Cache
	producer           Producer
	reservationsTopic  string
	notificationsTopic string
	roomLockTTL        time.Duration
	now                func() time.Time
}

type ReservationServiceOption func(*ReservationService)

func WithNotificationsTopic(topic string) ReservationServiceOption {
	return func(s *ReservationService) {
		s.notificationsTopic = topic
	}
}

// WithClock overrides the current-time source used by date validation.
func WithClock(now func() time.Time) ReservationServiceOption {
	return func(s *ReservationService) {
		s.now = now
	}
}

func NewReservationService(
	reservations repository.ReservationRepository,
	rooms repository.RoomRepository,
	cache Cache,
	producer Producer,
	reservationsTopic string,
	roomLockTTL time.Duration,
	opts ...ReservationServiceOption,
) *ReservationService {
	service := &ReservationService{
		reservations:      reservations,
		rooms:             rooms,
		cache:             cache,
		producer:          producer,
		reservationsTopic: reservationsTopic,
		roomLockTTL:       roomLockTTL,
		now:               time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *ReservationService) Create(ctx context.Context, input ReservationInput) (*domain.Reservation, error) {
	if input.Guests < 1 {
		input.Guests = 1
	}

	// The overlap check and the insert are not atomic on their own; the
	// per-room lock serializes concurrent booking attempts for the room.
	release, err := s.lockRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := s.Validate(ctx, nil, input.CustomerID, input.RoomID, input.CheckIn, input.CheckOut); err != nil {
		return nil, err
	}

	reservation := &domain.Reservation{
		CustomerID:       input.CustomerID,
		RoomID:           input.RoomID,
		ConfirmationCode: uuid.NewString(),
		CheckIn:          domain.ToDate(input.CheckIn),
		CheckOut:         domain.ToDate(input.CheckOut),
		Guests:           input.Guests,
		Status:           domain.ReservationStatusBooked,
	}

	if err := s.reservations.Save(ctx, reservation); err != nil {
		return nil, err
	}

	s.syncRoomStatusLogged(ctx, reservation.RoomID)
	s.publish(ctx, "reservation_created", reservation)
	return reservation, nil
}

func (s *ReservationService) Update(ctx context.Context, id int64, input ReservationInput) (*domain.Reservation, error) {
	current, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Guests < 1 {
		input.Guests = 1
	}

	release, err := s.lockRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := s.Validate(ctx, &id, input.CustomerID, input.RoomID, input.CheckIn, input.CheckOut); err != nil {
		return nil, err
	}

	oldRoomID := current.RoomID
	current.CustomerID = input.CustomerID
	current.RoomID = input.RoomID
	current.CheckIn = domain.ToDate(input.CheckIn)
	current.CheckOut = domain.ToDate(input.CheckOut)
	current.Guests = input.Guests

	if err := s.reservations.Update(ctx, current); err != nil {
		return nil, err
	}

	if oldRoomID != current.RoomID {
		s.syncRoomStatusLogged(ctx, oldRoomID)
	}
	s.syncRoomStatusLogged(ctx, current.RoomID)
	s.publish(ctx, "reservation_updated", current)
	return current, nil
}

func (s *ReservationService) Cancel(ctx context.Context, id int64) (*domain.Reservation, error) {
	current, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == domain.ReservationStatusCancelled {
		return current, nil
	}

	current.Status = domain.ReservationStatusCancelled
	if err := s.reservations.Update(ctx, current); err != nil {
		return nil, err
	}

	s.syncRoomStatusLogged(ctx, current.RoomID)
	s.publish(ctx, "reservation_cancelled", current)
	return current, nil
}

func (s *ReservationService) CheckIn(ctx context.Context, id int64) (*domain.Reservation, error) {
	current, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != domain.ReservationStatusBooked {
		return nil, fmt.Errorf("check-in from %s: %w", current.Status, domain.ErrInvalidTransition)
	}

	current.Status = domain.ReservationStatusCheckedIn
	if err := s.reservations.Update(ctx, current); err != nil {
		return nil, err
	}

	s.publish(ctx, "reservation_checked_in", current)
	return current, nil
}

func (s *ReservationService) CheckOut(ctx context.Context, id int64) (*domain.Reservation, error) {
	current, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != domain.ReservationStatusCheckedIn {
		return nil, fmt.Errorf("check-out from %s: %w", current.Status, domain.ErrInvalidTransition)
	}

	current.Status = domain.ReservationStatusCompleted
	if err := s.reservations.Update(ctx, current); err != nil {
		return nil, err
	}

	s.syncRoomStatusLogged(ctx, current.RoomID)
	s.publish(ctx, "reservation_checked_out", current)
	return current, nil
}

// Validate runs the ordered reservation checks and returns the first
// failure: dates present, check-out after check-in, check-in not in the
// past, room exists, no overlapping non-cancelled reservation. excludeID
// keeps an updated reservation from conflicting with its own row.
func (s *ReservationService) Validate(ctx context.Context, excludeID *int64, customerID, roomID int64, checkIn, checkOut time.Time) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return domain.ErrDatesRequired
	}
	in := domain.ToDate(checkIn)
	out := domain.ToDate(checkOut)
	if !out.After(in) {
		return domain.ErrCheckOutNotAfterCheckIn
	}
	if in.Before(domain.ToDate(s.now())) {
		return domain.ErrCheckInInPast
	}
	if _, err := s.rooms.GetByID(ctx, roomID); err != nil {
		return err
	}
	overlapping, err := s.reservations.FindOverlapping(ctx, roomID, in, out, excludeID)
	if err != nil {
		return err
	}
	if len(overlapping) > 0 {
		return domain.ErrRoomUnavailable
	}
	return nil
}

// AvailableRooms returns the rooms with no non-cancelled reservation
// overlapping [checkIn, checkOut). Uses the same overlap query as
// Validate so a listed room cannot be rejected by a following create.
func (s *ReservationService) AvailableRooms(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Room, error) {
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, err
	}

	in := domain.ToDate(checkIn)
	out := domain.ToDate(checkOut)
	available := make([]domain.Room, 0)
	for _, room := range rooms {
		overlapping, err := s.reservations.FindOverlapping(ctx, room.ID, in, out, nil)
		if err != nil {
			return nil, err
		}
		if len(overlapping) == 0 {
			available = append(available, room)
		}
	}
	return available, nil
}

func (s *ReservationService) List(ctx context.Context) ([]domain.Reservation, error) {
	return s.reservations.List(ctx)
}

func (s *ReservationService) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	return s.reservations.GetByID(ctx, id)
}

func (s *ReservationService) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Reservation, error) {
	return s.reservations.ListByCustomer(ctx, customerID)
}

func (s *ReservationService) ListByRoom(ctx context.Context, roomID int64) ([]domain.Reservation, error) {
	return s.reservations.ListByRoom(ctx, roomID)
}

// SyncAllRooms recomputes occupancy for every room and reports how many
// rooms changed status. Run periodically by the worker as a drift audit.
func (s *ReservationService) SyncAllRooms(ctx context.Context) (int, error) {
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return 0, err
	}

	changed := 0
	for _, room := range rooms {
		didChange, err := s.syncRoomStatus(ctx, room.ID)
		if err != nil {
			log.Printf("sync room %d: %v", room.ID, err)
			continue
		}
		if didChange {
			changed++
		}
	}
	return changed, nil
}

// syncRoomStatus re-derives a room's status from the store: OCCUPIED while
// at least one active reservation references it, AVAILABLE otherwise.
// Rooms under MAINTENANCE are administrative and left untouched.
func (s *ReservationService) syncRoomStatus(ctx context.Context, roomID int64) (bool, error) {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return false, err
	}
	if room.Status == domain.RoomStatusMaintenance {
		return false, nil
	}

	active, err := s.reservations.HasActiveByRoom(ctx, roomID)
	if err != nil {
		return false, err
	}

	status := domain.RoomStatusAvailable
	if active {
		status = domain.RoomStatusOccupied
	}
	if status == room.Status {
		return false, nil
	}

	if err := s.rooms.UpdateStatus(ctx, roomID, status); err != nil {
		return false, err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateRooms(ctx)
	}
	return true, nil
}

func (s *ReservationService) syncRoomStatusLogged(ctx context.Context, roomID int64) {
	if _, err := s.syncRoomStatus(ctx, roomID); err != nil {
		log.Printf("WARNING: failed to sync status of room %d: %v", roomID, err)
	}
}

func (s *ReservationService) lockRoom(ctx context.Context, roomID int64) (func(), error) {
	if s.cache == nil {
		return func() {}, nil
	}
	ok, err := s.cache.AcquireRoomLock(ctx, roomID, s.roomLockTTL)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrRoomLocked
	}
	return func() { _ = s.cache.ReleaseRoomLock(ctx, roomID) }, nil
}

func (s *ReservationService) publish(ctx context.Context, eventType string, reservation *domain.Reservation) {
	if s.producer == nil || s.reservationsTopic == "" {
		return
	}
	event := kafka.ReservationEvent{
		Type:             eventType,
		ReservationID:    reservation.ID,
		ConfirmationCode: reservation.ConfirmationCode,
		CustomerID:       reservation.CustomerID,
		RoomID:           reservation.RoomID,
		CheckIn:          reservation.CheckIn,
		CheckOut:         reservation.CheckOut,
		Guests:           reservation.Guests,
		Status:           string(reservation.Status),
	}
	if err := s.producer.Publish(ctx, s.reservationsTopic, reservation.ConfirmationCode, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for reservation %s: %v", eventType, reservation.ConfirmationCode, err)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, reservation.ConfirmationCode, event); err != nil {
			log.Printf("WARNING: failed to publish %s notification for reservation %s: %v", eventType, reservation.ConfirmationCode, err)
		}
	}
}

var _ ReservationUseCase = (*ReservationService)(nil)
