package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/floorplan-microservice/internal/domain"
	"github.com/floorplan-microservice/internal/domain/repository"
	"github.com/floorplan-microservice/internal/usecase"
	"github.com/floorplan-microservice/internal/usecase/dto"
	"github.com/floorplan-microservice/internal/worker"
)

const (
	emptyQueueSleep = 100 * time.Millisecond // пауза если очередь пуста
)

// ExportWorker обрабатывает события экспорта завершённых сканов:
// строит модель плана, сохраняет помещение и прогревает кеш документов
type ExportWorker struct {
	streamRepo   repository.StreamRepository
	roomUC       *usecase.RoomUseCase
	consumerName string
	batchSize    int
	formats      []string

	*worker.BaseWorker
}

// NewExportWorker создает новый ExportWorker
func NewExportWorker(
	streamRepo repository.StreamRepository,
	roomUC *usecase.RoomUseCase,
	consumerGroup string,
	batchSize int,
	defaultFormats []string,
	logger *zap.Logger,
) *ExportWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &ExportWorker{
		BaseWorker:   worker.NewBaseWorker("floorplan-export", consumerGroup, logger),
		streamRepo:   streamRepo,
		roomUC:       roomUC,
		consumerName: consumerName,
		batchSize:    batchSize,
		formats:      defaultFormats,
	}
}

// Start запускает воркер
func (w *ExportWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting ExportWorker (batch mode)",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("batch_size", w.batchSize))

	// Создаем consumer group
	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamExportRequest, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	// Основной цикл обработки
	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(time.Second) // пауза при ошибке
				continue
			}

			// Если ничего не обработали - короткая пауза
			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// processBatch читает и обрабатывает batch сообщений.
// Возвращает количество прочитанных сообщений
func (w *ExportWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamExportRequest,
		w.ConsumerGroup(),
		w.consumerName,
		w.batchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil // очередь пуста
	}

	logger.Info("Processing batch", zap.Int("message_count", len(messages)))

	processedIDs := make([]string, 0, len(messages))

	for _, msg := range messages {
		event, err := w.parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// ACK битое сообщение чтобы не застревало
			processedIDs = append(processedIDs, msg.ID)
			continue
		}

		done := w.processEvent(ctx, event)

		if err := w.streamRepo.PublishToStream(ctx, domain.StreamExportDone, done); err != nil {
			logger.Error("Failed to publish done event",
				zap.String("request_id", event.RequestID.String()),
				zap.Error(err))
			// Продолжаем с остальными сообщениями
		}

		processedIDs = append(processedIDs, msg.ID)
	}

	if err := w.streamRepo.AckMessages(ctx, domain.StreamExportRequest, w.ConsumerGroup(), processedIDs); err != nil {
		logger.Error("Failed to ack messages", zap.Error(err))
		// Не критично - сообщения будут переобработаны
	}

	logger.Info("Batch processed", zap.Int("processed", len(processedIDs)))

	return len(messages), nil
}

// processEvent обрабатывает одно событие экспорта: сохраняет помещение
// и экспортирует документы во все запрошенные форматы
func (w *ExportWorker) processEvent(ctx context.Context, event *domain.ExportRequestEvent) *domain.ExportDoneEvent {
	logger := w.Logger()
	done := &domain.ExportDoneEvent{RequestID: event.RequestID}

	if !event.HasSurfaces() {
		done.Error = "event contains no surfaces"
		return done
	}

	name := event.RoomName
	if name == "" {
		name = "Room " + event.RequestID.String()[:8]
	}

	saved, err := w.roomUC.Save(ctx, dto.SaveRoomRequest{
		Name:     name,
		Surfaces: convertSurfaces(event.Surfaces),
	})
	if err != nil {
		logger.Error("Failed to save room from event",
			zap.String("request_id", event.RequestID.String()),
			zap.Error(err))
		done.Error = err.Error()
		return done
	}

	formats := event.Formats
	if len(formats) == 0 {
		formats = w.formats
	}

	// Прогреваем кеш: каждый экспорт кладёт документ в Redis
	exported := make([]string, 0, len(formats))
	for _, format := range formats {
		_, err := w.roomUC.Export(ctx, dto.ExportRoomRequest{
			RoomID:            saved.ID,
			Format:            format,
			IncludeDimensions: event.IncludeDimensions,
		})
		if err != nil {
			logger.Warn("Failed to export format",
				zap.String("request_id", event.RequestID.String()),
				zap.String("format", format),
				zap.Error(err))
			continue
		}
		exported = append(exported, format)
	}

	roomID, _ := uuid.Parse(saved.ID)
	done.RoomID = roomID
	done.Formats = exported
	done.ElementCount = saved.ElementCount

	logger.Info("Export event processed",
		zap.String("request_id", event.RequestID.String()),
		zap.String("room_id", saved.ID),
		zap.Strings("formats", exported))

	return done
}

// parseMessage парсит сообщение из стрима в ExportRequestEvent
func (w *ExportWorker) parseMessage(msg domain.StreamMessage) (*domain.ExportRequestEvent, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("missing 'data' field")
	}

	var event domain.ExportRequestEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return &event, nil
}

// convertSurfaces конвертирует domain поверхности в DTO запроса сохранения
func convertSurfaces(surfaces []domain.SurfaceRecord) []dto.SurfaceInput {
	out := make([]dto.SurfaceInput, len(surfaces))
	for i, s := range surfaces {
		out[i] = dto.SurfaceInput{
			Kind:      string(s.Kind),
			Transform: [16]float64(s.Transform),
			Extent: dto.ExtentInput{
				Width:  s.Extent.Width,
				Height: s.Extent.Height,
				Depth:  s.Extent.Depth,
			},
			Category: s.Category,
		}
	}
	return out
}
