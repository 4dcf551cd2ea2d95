package rooms

import (
	"context"
	"testing"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) Update(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) UpdateStatus(ctx context.Context, roomID int64, status domain.RoomStatus) error {
	args := m.Called(ctx, roomID, status)
	return args.Error(0)
}

func (m *MockRoomRepository) Delete(ctx context.Context, roomID int64) error {
	args := m.Called(ctx, roomID)
	return args.Error(0)
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) GetByNumber(ctx context.Context, number string) (*domain.Room, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

type MockActiveChecker struct {
	mock.Mock
}

func (m *MockActiveChecker) HasActiveByRoom(ctx context.Context, roomID int64) (bool, error) {
	args := m.Called(ctx, roomID)
	return args.Bool(0), args.Error(1)
}

type MockRoomCache struct {
	mock.Mock
}

func (m *MockRoomCache) GetRooms(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomCache) SetRooms(ctx context.Context, rooms []domain.Room) error {
	args := m.Called(ctx, rooms)
	return args.Error(0)
}

func (m *MockRoomCache) InvalidateRooms(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestRoomService_Add_Success(t *testing.T) {
	repo := &MockRoomRepository{}
	checker := &MockActiveChecker{}
	service := NewRoomService(repo, checker, nil)
	ctx := context.Background()

	repo.On("GetByNumber", ctx, "101").Return(nil, domain.ErrRoomNotFound).Once()
	repo.On("Create", ctx, mock.AnythingOfType("*domain.Room")).Return(nil).Once()

	room, err := service.Add(ctx, RoomInput{Number: " 101 ", Type: domain.RoomTypeDouble, PriceCents: 12000})

	require.NoError(t, err)
	assert.Equal(t, "101", room.Number)
	assert.Equal(t, domain.RoomStatusAvailable, room.Status)
	repo.AssertExpectations(t)
}

func TestRoomService_Add_ValidationErrors(t *testing.T) {
	repo := &MockRoomRepository{}
	service := NewRoomService(repo, &MockActiveChecker{}, nil)
	ctx := context.Background()

	testCases := []struct {
		name        string
		input       RoomInput
		expectedErr error
	}{
		{
			name:        "empty number",
			input:       RoomInput{Number: "  ", Type: domain.RoomTypeSingle, PriceCents: 100},
			expectedErr: domain.ErrRoomNumberRequired,
		},
		{
			name:        "unknown type",
			input:       RoomInput{Number: "101", Type: "PENTHOUSE", PriceCents: 100},
			expectedErr: domain.ErrInvalidRoomType,
		},
		{
			name:        "negative price",
			input:       RoomInput{Number: "101", Type: domain.RoomTypeSuite, PriceCents: -1},
			expectedErr: domain.ErrInvalidPrice,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Add(ctx, tc.input)
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRoomService_Add_NumberTaken(t *testing.T) {
	repo := &MockRoomRepository{}
	service := NewRoomService(repo, &MockActiveChecker{}, nil)
	ctx := context.Background()

	existing := &domain.Room{ID: 5, Number: "101"}
	repo.On("GetByNumber", ctx, "101").Return(existing, nil).Once()

	_, err := service.Add(ctx, RoomInput{Number: "101", Type: domain.RoomTypeDouble, PriceCents: 100})
	assert.ErrorIs(t, err, domain.ErrRoomNumberTaken)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRoomService_Update_KeepsOwnNumber(t *testing.T) {
	repo := &MockRoomRepository{}
	service := NewRoomService(repo, &MockActiveChecker{}, nil)
	ctx := context.Background()

	current := &domain.Room{ID: 5, Number: "101", Type: domain.RoomTypeDouble, PriceCents: 100, Status: domain.RoomStatusAvailable}
	repo.On("GetByID", ctx, int64(5)).Return(current, nil).Once()
	repo.On("GetByNumber", ctx, "101").Return(current, nil).Once()
	repo.On("Update", ctx, mock.AnythingOfType("*domain.Room")).Return(nil).Once()

	updated, err := service.Update(ctx, 5, RoomInput{Number: "101", Type: domain.RoomTypeSuite, PriceCents: 20000})

	require.NoError(t, err)
	assert.Equal(t, domain.RoomTypeSuite, updated.Type)
	assert.Equal(t, int64(20000), updated.PriceCents)
	repo.AssertExpectations(t)
}

func TestRoomService_Delete_RefusedWhileActive(t *testing.T) {
	repo := &MockRoomRepository{}
	checker := &MockActiveChecker{}
	service := NewRoomService(repo, checker, nil)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(5)).Return(&domain.Room{ID: 5, Number: "101"}, nil).Once()
	checker.On("HasActiveByRoom", ctx, int64(5)).Return(true, nil).Once()

	err := service.Delete(ctx, 5)
	assert.ErrorIs(t, err, domain.ErrRoomOccupied)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestRoomService_List_CacheHit(t *testing.T) {
	repo := &MockRoomRepository{}
	mockCache := &MockRoomCache{}
	service := NewRoomService(repo, &MockActiveChecker{}, mockCache)
	ctx := context.Background()

	cached := []domain.Room{{ID: 1, Number: "101"}}
	mockCache.On("GetRooms", ctx).Return(cached, nil).Once()

	rooms, err := service.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, cached, rooms)
	repo.AssertNotCalled(t, "List", mock.Anything)
	mockCache.AssertExpectations(t)
}

func TestRoomService_List_CacheMissFillsCache(t *testing.T) {
	repo := &MockRoomRepository{}
	mockCache := &MockRoomCache{}
	service := NewRoomService(repo, &MockActiveChecker{}, mockCache)
	ctx := context.Background()

	fromDB := []domain.Room{{ID: 1, Number: "101"}, {ID: 2, Number: "102"}}
	mockCache.On("GetRooms", ctx).Return(nil, nil).Once()
	repo.On("List", ctx).Return(fromDB, nil).Once()
	mockCache.On("SetRooms", ctx, fromDB).Return(nil).Once()

	rooms, err := service.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, fromDB, rooms)
	repo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestRoomService_ClearMaintenance_RecomputesOccupancy(t *testing.T) {
	repo := &MockRoomRepository{}
	checker := &MockActiveChecker{}
	service := NewRoomService(repo, checker, nil)
	ctx := context.Background()

	current := &domain.Room{ID: 5, Number: "101", Status: domain.RoomStatusMaintenance}
	repo.On("GetByID", ctx, int64(5)).Return(current, nil).Once()
	checker.On("HasActiveByRoom", ctx, int64(5)).Return(true, nil).Once()
	repo.On("UpdateStatus", ctx, int64(5), domain.RoomStatusOccupied).Return(nil).Once()

	room, err := service.ClearMaintenance(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, domain.RoomStatusOccupied, room.Status)
	repo.AssertExpectations(t)
	checker.AssertExpectations(t)
}
