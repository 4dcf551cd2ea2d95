package rooms

import (
	"context"
	"strings"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/repository"
)

type RoomUseCase interface {
	Add(ctx context.Context, input RoomInput) (*domain.Room, error)
	Update(ctx context.Context, id int64, input RoomInput) (*domain.Room, error)
	Delete(ctx context.Context, id int64) error
	SetMaintenance(ctx context.Context, id int64) (*domain.Room, error)
	ClearMaintenance(ctx context.Context, id int64) (*domain.Room, error)
	List(ctx context.Context) ([]domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	GetByNumber(ctx context.Context, number string) (*domain.Room, error)
}

type RoomCache interface {
	GetRooms(ctx context.Context) ([]domain.Room, error)
	SetRooms(ctx context.Context, rooms []domain.Room) error
	InvalidateRooms(ctx context.Context) error
}

type ActiveReservationChecker interface {
	HasActiveByRoom(ctx context.Context, roomID int64) (bool, error)
}

type RoomInput struct {
	Number     string          `json:"number"`
	Type       domain.RoomType `json:"type"`
	PriceCents int64           `json:"price_cents"`
}

type RoomService struct {
	repo         repository.RoomRepository
	reservations ActiveReservationChecker
	cache        RoomCache
}

func NewRoomService(repo repository.RoomRepository, reservations ActiveReservationChecker, cache RoomCache) *RoomService {
	return &RoomService{repo: repo, reservations: reservations, cache: cache}
}

func (s *RoomService) Add(ctx context.Context, input RoomInput) (*domain.Room, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}
	number := strings.TrimSpace(input.Number)
	if existing, err := s.repo.GetByNumber(ctx, number); err == nil && existing != nil {
		return nil, domain.ErrRoomNumberTaken
	}

	room := &domain.Room{
		Number:     number,
		Type:       input.Type,
		PriceCents: input.PriceCents,
		Status:     domain.RoomStatusAvailable,
	}
	if err := s.repo.Create(ctx, room); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return room, nil
}

func (s *RoomService) Update(ctx context.Context, id int64, input RoomInput) (*domain.Room, error) {
	room, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	number := strings.TrimSpace(input.Number)
	if existing, err := s.repo.GetByNumber(ctx, number); err == nil && existing != nil && existing.ID != id {
		return nil, domain.ErrRoomNumberTaken
	}

	room.Number = number
	room.Type = input.Type
	room.PriceCents = input.PriceCents
	if err := s.repo.Update(ctx, room); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return room, nil
}

// Delete removes a room from the registry. Refused while the room still
// has active reservations.
func (s *RoomService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	active, err := s.reservations.HasActiveByRoom(ctx, id)
	if err != nil {
		return err
	}
	if active {
		return domain.ErrRoomOccupied
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// SetMaintenance takes a room out of service. The reservation engine
// skips rooms in this state when it recomputes occupancy.
func (s *RoomService) SetMaintenance(ctx context.Context, id int64) (*domain.Room, error) {
	return s.setStatus(ctx, id, domain.RoomStatusMaintenance)
}

// ClearMaintenance returns a room to service. Occupancy is recomputed
// from active reservations rather than restored to the previous value.
func (s *RoomService) ClearMaintenance(ctx context.Context, id int64) (*domain.Room, error) {
	room, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	active, err := s.reservations.HasActiveByRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	status := domain.RoomStatusAvailable
	if active {
		status = domain.RoomStatusOccupied
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	room.Status = status
	s.invalidate(ctx)
	return room, nil
}

func (s *RoomService) List(ctx context.Context) ([]domain.Room, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetRooms(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	rooms, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetRooms(ctx, rooms)
	}
	return rooms, nil
}

func (s *RoomService) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *RoomService) GetByNumber(ctx context.Context, number string) (*domain.Room, error) {
	return s.repo.GetByNumber(ctx, strings.TrimSpace(number))
}

func (s *RoomService) setStatus(ctx context.Context, id int64, status domain.RoomStatus) (*domain.Room, error) {
	room, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	room.Status = status
	s.invalidate(ctx)
	return room, nil
}

func (s *RoomService) validateInput(input RoomInput) error {
	if strings.TrimSpace(input.Number) == "" {
		return domain.ErrRoomNumberRequired
	}
	if !domain.ValidRoomType(input.Type) {
		return domain.ErrInvalidRoomType
	}
	if input.PriceCents < 0 {
		return domain.ErrInvalidPrice
	}
	return nil
}

func (s *RoomService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateRooms(ctx)
	}
}

var _ RoomUseCase = (*RoomService)(nil)
