package export_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/floorplan-microservice/internal/domain"
	"github.com/floorplan-microservice/internal/domain/repository"
	"github.com/floorplan-microservice/internal/usecase"
	exportWorker "github.com/floorplan-microservice/internal/worker/export"
)

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs []string) error {
	args := m.Called(ctx, stream, group, messageIDs)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

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

func newTestWorker(streamRepo *MockStreamRepository, roomRepo *MockRoomRepository, cacheRepo *MockCacheRepository) *exportWorker.ExportWorker {
	logger := zap.NewNop()
	roomUC := usecase.NewRoomUseCase(roomRepo, cacheRepo, logger, time.Hour)
	return exportWorker.NewExportWorker(streamRepo, roomUC, "test-group", 10, []string{"svg"}, logger)
}

func requestMessage(t *testing.T, event domain.ExportRequestEvent) domain.StreamMessage {
	t.Helper()
	data, err := json.Marshal(event)
	require.NoError(t, err)
	return domain.StreamMessage{ID: "1-0", Data: string(data)}
}

func TestExportWorker_Name(t *testing.T) {
	w := newTestWorker(&MockStreamRepository{}, &MockRoomRepository{}, &MockCacheRepository{})
	assert.Equal(t, "floorplan-export", w.Name())
}

func TestExportWorker_StopIsIdempotent(t *testing.T) {
	w := newTestWorker(&MockStreamRepository{}, &MockRoomRepository{}, &MockCacheRepository{})

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
	assert.True(t, w.IsStopped())
}

func TestExportWorker_ConsumerGroupFailureAbortsStart(t *testing.T) {
	mockStream := &MockStreamRepository{}
	w := newTestWorker(mockStream, &MockRoomRepository{}, &MockCacheRepository{})

	mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamExportRequest, "test-group").
		Return(assert.AnError)

	err := w.Start(context.Background())
	assert.Error(t, err)
}

func TestExportWorker_ProcessesEventAndPublishesDone(t *testing.T) {
	mockStream := &MockStreamRepository{}
	mockRoom := &MockRoomRepository{}
	mockCache := &MockCacheRepository{}
	w := newTestWorker(mockStream, mockRoom, mockCache)

	event := domain.ExportRequestEvent{
		RequestID: uuid.New(),
		RoomName:  "Scanned Room",
		Surfaces: []domain.SurfaceRecord{
			{
				Kind:      domain.SurfaceWall,
				Transform: domain.TranslatedTransform(2.0, 1.25, 0.05),
				Extent:    domain.Extent{Width: 4.0, Height: 2.5, Depth: 0.1},
			},
		},
		Formats: []string{"svg"},
	}

	mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamExportRequest, "test-group").Return(nil)
	mockStream.On("ConsumeBatch", mock.Anything, domain.StreamExportRequest, "test-group", mock.Anything, 10).
		Return([]domain.StreamMessage{requestMessage(t, event)}, nil).Once()
	mockStream.On("ConsumeBatch", mock.Anything, domain.StreamExportRequest, "test-group", mock.Anything, 10).
		Return([]domain.StreamMessage{}, nil)

	mockRoom.On("Create", mock.Anything, mock.MatchedBy(func(room *domain.SavedRoom) bool {
		return room.Name == "Scanned Room" && room.ElementCount == 1
	})).Return(nil)

	// Экспорт прогревает кеш: промах, затем запись документа
	mockCache.On("GetExport", mock.Anything, mock.Anything, "svg", false).Return(nil, nil)
	mockRoom.On("GetByID", mock.Anything, mock.Anything).
		Return(&domain.SavedRoom{Name: "Scanned Room", ElementCount: 1}, nil)
	mockCache.On("SetExport", mock.Anything, mock.Anything, "svg", false, mock.Anything, time.Hour).Return(nil)

	mockStream.On("PublishToStream", mock.Anything, domain.StreamExportDone, mock.MatchedBy(func(data interface{}) bool {
		done, ok := data.(*domain.ExportDoneEvent)
		return ok && done.RequestID == event.RequestID && done.Error == "" &&
			len(done.Formats) == 1 && done.Formats[0] == "svg"
	})).Return(nil)

	mockStream.On("AckMessages", mock.Anything, domain.StreamExportRequest, "test-group", []string{"1-0"}).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	startDone := make(chan error, 1)
	go func() {
		startDone <- w.Start(ctx)
	}()

	time.Sleep(300 * time.Millisecond)
	require.NoError(t, w.Stop())

	select {
	case err := <-startDone:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop in time")
	}

	mockStream.AssertExpectations(t)
	mockRoom.AssertExpectations(t)
}

func TestExportWorker_MalformedMessageAcked(t *testing.T) {
	mockStream := &MockStreamRepository{}
	w := newTestWorker(mockStream, &MockRoomRepository{}, &MockCacheRepository{})

	mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamExportRequest, "test-group").Return(nil)
	mockStream.On("ConsumeBatch", mock.Anything, domain.StreamExportRequest, "test-group", mock.Anything, 10).
		Return([]domain.StreamMessage{{ID: "2-0", Data: "{not json"}}, nil).Once()
	mockStream.On("ConsumeBatch", mock.Anything, domain.StreamExportRequest, "test-group", mock.Anything, 10).
		Return([]domain.StreamMessage{}, nil)

	// Битое сообщение подтверждается, чтобы не блокировать очередь
	mockStream.On("AckMessages", mock.Anything, domain.StreamExportRequest, "test-group", []string{"2-0"}).Return(nil)

	startDone := make(chan error, 1)
	go func() {
		startDone <- w.Start(context.Background())
	}()

	time.Sleep(300 * time.Millisecond)
	require.NoError(t, w.Stop())

	select {
	case err := <-startDone:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop in time")
	}

	mockStream.AssertExpectations(t)
}

func TestExportWorker_EventWithoutSurfacesReportsError(t *testing.T) {
	mockStream := &MockStreamRepository{}
	mockRoom := &MockRoomRepository{}
	w := newTestWorker(mockStream, mockRoom, &MockCacheRepository{})

	event := domain.ExportRequestEvent{RequestID: uuid.New(), RoomName: "Empty"}

	mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamExportRequest, "test-group").Return(nil)
	mockStream.On("ConsumeBatch", mock.Anything, domain.StreamExportRequest, "test-group", mock.Anything, 10).
		Return([]domain.StreamMessage{requestMessage(t, event)}, nil).Once()
	mockStream.On("ConsumeBatch", mock.Anything, domain.StreamExportRequest, "test-group", mock.Anything, 10).
		Return([]domain.StreamMessage{}, nil)

	mockStream.On("PublishToStream", mock.Anything, domain.StreamExportDone, mock.MatchedBy(func(data interface{}) bool {
		done, ok := data.(*domain.ExportDoneEvent)
		return ok && done.RequestID == event.RequestID && done.Error != ""
	})).Return(nil)

	mockStream.On("AckMessages", mock.Anything, domain.StreamExportRequest, "test-group", []string{"1-0"}).Return(nil)

	startDone := make(chan error, 1)
	go func() {
		startDone <- w.Start(context.Background())
	}()

	time.Sleep(300 * time.Millisecond)
	require.NoError(t, w.Stop())

	select {
	case err := <-startDone:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop in time")
	}

	mockRoom.AssertNotCalled(t, "Create")
	mockStream.AssertExpectations(t)
}
