package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/floorplan-microservice/internal/domain"
	"github.com/floorplan-microservice/internal/domain/repository"
	apperrors "github.com/floorplan-microservice/internal/pkg/errors"
	"github.com/floorplan-microservice/internal/usecase"
	"github.com/floorplan-microservice/internal/usecase/dto"
)

// MockRoomRepository is a mock of RoomRepository
type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Create(ctx context.Context, room *domain.SavedRoom) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SavedRoom, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SavedRoom), args.Error(1)
}

func (m *MockRoomRepository) List(ctx context.Context, filter repository.RoomFilter) ([]domain.SavedRoom, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.SavedRoom), args.Int(1), args.Error(2)
}

func (m *MockRoomRepository) Rename(ctx context.Context, id uuid.UUID, name string) (bool, error) {
	args := m.Called(ctx, id, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoomRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoomRepository) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statistics), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) GetExport(ctx context.Context, roomID, format string, includeDimensions bool) ([]byte, error) {
	args := m.Called(ctx, roomID, format, includeDimensions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) SetExport(ctx context.Context, roomID, format string, includeDimensions bool, doc []byte, ttl time.Duration) error {
	args := m.Called(ctx, roomID, format, includeDimensions, doc, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) InvalidateRoom(ctx context.Context, roomID string) error {
	args := m.Called(ctx, roomID)
	return args.Error(0)
}

func (m *MockCacheRepository) GetStats(ctx context.Context) (*domain.Statistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statistics), args.Error(1)
}

func (m *MockCacheRepository) SetStats(ctx context.Context, stats *domain.Statistics, ttl time.Duration) error {
	args := m.Called(ctx, stats, ttl)
	return args.Error(0)
}

func savedRoomFixture(id uuid.UUID) *domain.SavedRoom {
	return &domain.SavedRoom{
		ID:   id,
		Name: "Living Room",
		Plan: domain.FloorPlanData{
			Elements: []domain.FloorPlanElement{
				{Rect: domain.Rect{X: 0, Y: 0, Width: 4, Height: 0.1}, Kind: domain.ElementWall},
			},
			BoundingBox:    domain.BoundingBox{MinX: 0, MinY: 0, MaxX: 4, MaxY: 0.1},
			RoomDimensions: domain.RoomDimensions{Width: 4, Height: 2.5, Depth: 0.1},
		},
		ElementCount:     1,
		ObjectCategories: []string{"sofa"},
		CreatedAt:        time.Now().UTC(),
		UpdatedAt:        time.Now().UTC(),
	}
}

func TestRoomUseCase_Save(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("builds plan and persists room", func(t *testing.T) {
		mockRoom := &MockRoomRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewRoomUseCase(mockRoom, mockCache, logger, time.Hour)

		mockRoom.On("Create", ctx, mock.MatchedBy(func(room *domain.SavedRoom) bool {
			return room.Name == "Living Room" &&
				room.ElementCount == 3 &&
				len(room.ObjectCategories) == 1 &&
				room.ObjectCategories[0] == "sofa"
		})).Return(nil)

		resp, err := uc.Save(ctx, dto.SaveRoomRequest{
			Name:     "Living Room",
			Surfaces: sampleSurfaces(),
		})

		require.NoError(t, err)
		assert.Equal(t, "Living Room", resp.Name)
		assert.Equal(t, 3, resp.ElementCount)
		assert.NotEmpty(t, resp.ID)
		mockRoom.AssertExpectations(t)
	})

	t.Run("database error wrapped", func(t *testing.T) {
		mockRoom := &MockRoomRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewRoomUseCase(mockRoom, mockCache, logger, time.Hour)

		mockRoom.On("Create", ctx, mock.Anything).Return(errors.New("connection refused"))

		_, err := uc.Save(ctx, dto.SaveRoomRequest{
			Name:     "Broken",
			Surfaces: sampleSurfaces(),
		})

		assert.Equal(t, apperrors.ErrDatabaseError, err)
	})
}

func TestRoomUseCase_Get(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	roomID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockRoom := &MockRoomRepository{}
		uc := usecase.NewRoomUseCase(mockRoom, &MockCacheRepository{}, logger, time.Hour)

		mockRoom.On("GetByID", ctx, roomID).Return(savedRoomFixture(roomID), nil)

		resp, err := uc.Get(ctx, roomID.String())

		require.NoError(t, err)
		assert.Equal(t, roomID.String(), resp.ID)
		assert.Len(t, resp.Plan.Elements, 1)
	})

	t.Run("not found", func(t *testing.T) {
		mockRoom := &MockRoomRepository{}
		uc := usecase.NewRoomUseCase(mockRoom, &MockCacheRepository{}, logger, time.Hour)

		mockRoom.On("GetByID", ctx, roomID).Return(nil, nil)

		_, err := uc.Get(ctx, roomID.String())

		assert.Equal(t, apperrors.ErrRoomNotFound, err)
	})

	t.Run("invalid id", func(t *testing.T) {
		uc := usecase.NewRoomUseCase(&MockRoomRepository{}, &MockCacheRepository{}, logger, time.Hour)

		_, err := uc.Get(ctx, "not-a-uuid")

		assert.Equal(t, apperrors.ErrInvalidRoomID, err)
	})
}

func TestRoomUseCase_List(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("default limit applied", func(t *testing.T) {
		mockRoom := &MockRoomRepository{}
		uc := usecase.NewRoomUseCase(mockRoom, &MockCacheRepository{}, logger, time.Hour)

		room := savedRoomFixture(uuid.New())
		mockRoom.On("List", ctx, repository.RoomFilter{Limit: 20}).
			Return([]domain.SavedRoom{*room}, 1, nil)

		resp, err := uc.List(ctx, dto.ListRoomsRequest{})

		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
		require.Len(t, resp.Rooms, 1)
		assert.Equal(t, room.Name, resp.Rooms[0].Name)
	})

	t.Run("categories filter passed through", func(t *testing.T) {
		mockRoom := &MockRoomRepository{}
		uc := usecase.NewRoomUseCase(mockRoom, &MockCacheRepository{}, logger, time.Hour)

		mockRoom.On("List", ctx, repository.RoomFilter{
			ObjectCategories: []string{"sofa", "table"},
			Limit:            5,
			Offset:           10,
		}).Return([]domain.SavedRoom{}, 0, nil)

		resp, err := uc.List(ctx, dto.ListRoomsRequest{
			Categories: []string{"sofa", "table"},
			Limit:      5,
			Offset:     10,
		})

		require.NoError(t, err)
		assert.Equal(t, 0, resp.Total)
		mockRoom.AssertExpectations(t)
	})
}

func TestRoomUseCase_Rename(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	roomID := uuid.New()

	t.Run("renames and invalidates cache", func(t *testing.T) {
		mockRoom := &MockRoomRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewRoomUseCase(mockRoom, mockCache, logger, time.Hour)

		mockRoom.On("Rename", ctx, roomID, "Bedroom").Return(true, nil)
		mockCache.On("InvalidateRoom", ctx, roomID.String()).Return(nil)

		err := uc.Rename(ctx, roomID.String(), dto.RenameRoomRequest{Name: "Bedroom"})

		require.NoError(t, err)
		mockCache.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockRoom := &MockRoomRepository{}
		uc := usecase.NewRoomUseCase(mockRoom, &MockCacheRepository{}, logger, time.Hour)

		mockRoom.On("Rename", ctx, roomID, "Bedroom").Return(false, nil)

		err := uc.Rename(ctx, roomID.String(), dto.RenameRoomRequest{Name: "Bedroom"})

		assert.Equal(t, apperrors.ErrRoomNotFound, err)
	})

	t.Run("cache failure is not fatal", func(t *testing.T) {
		mockRoom := &MockRoomRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewRoomUseCase(mockRoom, mockCache, logger, time.Hour)

		mockRoom.On("Rename", ctx, roomID, "Bedroom").Return(true, nil)
		mockCache.On("InvalidateRoom", ctx, roomID.String()).Return(errors.New("redis down"))

		err := uc.Rename(ctx, roomID.String(), dto.RenameRoomRequest{Name: "Bedroom"})

		assert.NoError(t, err)
	})
}

func TestRoomUseCase_Delete(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	roomID := uuid.New()

	t.Run("deletes and invalidates cache", func(t *testing.T) {
		mockRoom := &MockRoomRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewRoomUseCase(mockRoom, mockCache, logger, time.Hour)

		mockRoom.On("Delete", ctx, roomID).Return(true, nil)
		mockCache.On("InvalidateRoom", ctx, roomID.String()).Return(nil)

		err := uc.Delete(ctx, roomID.String())

		require.NoError(t, err)
		mockCache.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockRoom := &MockRoomRepository{}
		uc := usecase.NewRoomUseCase(mockRoom, &MockCacheRepository{}, logger, time.Hour)

		mockRoom.On("Delete", ctx, roomID).Return(false, nil)

		err := uc.Delete(ctx, roomID.String())

		assert.Equal(t, apperrors.ErrRoomNotFound, err)
	})
}

func TestRoomUseCase_Export(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	roomID := uuid.New()

	t.Run("cache hit skips database", func(t *testing.T) {
		mockRoom := &MockRoomRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewRoomUseCase(mockRoom, mockCache, logger, time.Hour)

		cachedDoc := []byte("<svg cached/>")
		mockCache.On("GetExport", ctx, roomID.String(), "svg", false).Return(cachedDoc, nil)

		result, err := uc.Export(ctx, dto.ExportRoomRequest{
			RoomID: roomID.String(),
			Format: "svg",
		})

		require.NoError(t, err)
		assert.Equal(t, string(cachedDoc), result.Document)
		assert.Equal(t, "image/svg+xml", result.ContentType)
		mockRoom.AssertNotCalled(t, "GetByID")
	})

	t.Run("cache miss exports and caches", func(t *testing.T) {
		mockRoom := &MockRoomRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewRoomUseCase(mockRoom, mockCache, logger, time.Hour)

		mockCache.On("GetExport", ctx, roomID.String(), "dxf", true).Return(nil, nil)
		mockRoom.On("GetByID", ctx, roomID).Return(savedRoomFixture(roomID), nil)
		mockCache.On("SetExport", ctx, roomID.String(), "dxf", true, mock.Anything, time.Hour).Return(nil)

		result, err := uc.Export(ctx, dto.ExportRoomRequest{
			RoomID:            roomID.String(),
			Format:            "dxf",
			IncludeDimensions: true,
		})

		require.NoError(t, err)
		assert.Contains(t, result.Document, "AC1015")
		assert.Equal(t, "room-"+roomID.String()+".dxf", result.Filename)
		mockCache.AssertExpectations(t)
	})

	t.Run("room not found", func(t *testing.T) {
		mockRoom := &MockRoomRepository{}
		mockCache := &MockCacheRepository{}
		uc := usecase.NewRoomUseCase(mockRoom, mockCache, logger, time.Hour)

		mockCache.On("GetExport", ctx, roomID.String(), "svg", false).Return(nil, nil)
		mockRoom.On("GetByID", ctx, roomID).Return(nil, nil)

		_, err := uc.Export(ctx, dto.ExportRoomRequest{
			RoomID: roomID.String(),
			Format: "svg",
		})

		assert.Equal(t, apperrors.ErrRoomNotFound, err)
	})

	t.Run("invalid format", func(t *testing.T) {
		uc := usecase.NewRoomUseCase(&MockRoomRepository{}, &MockCacheRepository{}, logger, time.Hour)

		_, err := uc.Export(ctx, dto.ExportRoomRequest{
			RoomID: roomID.String(),
			Format: "pdf",
		})

		assert.Equal(t, apperrors.ErrInvalidFormat, err)
	})
}
