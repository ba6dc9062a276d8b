package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/floorplan-microservice/internal/domain"
	"github.com/floorplan-microservice/internal/domain/repository"
	"github.com/floorplan-microservice/internal/export"
	"github.com/floorplan-microservice/internal/floorplan"
	"github.com/floorplan-microservice/internal/pkg/errors"
	"github.com/floorplan-microservice/internal/usecase/dto"
)

// RoomUseCase - use case для сохранённых помещений: сохранение модели
// плана и повторный экспорт без пересканирования
type RoomUseCase struct {
	roomRepo  repository.RoomRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

// NewRoomUseCase - создание нового RoomUseCase
func NewRoomUseCase(
	roomRepo repository.RoomRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *RoomUseCase {
	return &RoomUseCase{
		roomRepo:  roomRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// Save - построение модели плана и сохранение помещения
func (uc *RoomUseCase) Save(ctx context.Context, req dto.SaveRoomRequest) (*dto.RoomResponse, error) {
	surfaces := dto.ConvertSurfaces(req.Surfaces)

	if err := floorplan.ValidateSurfaces(surfaces); err != nil {
		uc.logger.Warn("Rejected malformed surface geometry", zap.Error(err))
		return nil, err
	}

	plan := floorplan.Build(surfaces)

	room := &domain.SavedRoom{
		ID:               uuid.New(),
		Name:             req.Name,
		Plan:             plan,
		ElementCount:     len(plan.Elements),
		ObjectCategories: objectCategoriesOf(surfaces),
	}

	if err := uc.roomRepo.Create(ctx, room); err != nil {
		uc.logger.Error("Failed to save room", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	uc.logger.Info("Room saved",
		zap.String("room_id", room.ID.String()),
		zap.String("name", room.Name),
		zap.Int("elements", room.ElementCount))

	return dto.NewRoomResponse(room), nil
}

// Get - получение сохранённого помещения вместе с моделью плана
func (uc *RoomUseCase) Get(ctx context.Context, id string) (*dto.RoomResponse, error) {
	roomID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.ErrInvalidRoomID
	}

	room, err := uc.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		uc.logger.Error("Failed to get room", zap.String("room_id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	if room == nil {
		return nil, errors.ErrRoomNotFound
	}

	return dto.NewRoomResponse(room), nil
}

// List - список сохранённых помещений с фильтром по категориям объектов
func (uc *RoomUseCase) List(ctx context.Context, req dto.ListRoomsRequest) (*dto.ListRoomsResponse, error) {
	// Установка значений по умолчанию
	if req.Limit == 0 {
		req.Limit = 20
	}

	rooms, total, err := uc.roomRepo.List(ctx, repository.RoomFilter{
		ObjectCategories: req.Categories,
		Limit:            req.Limit,
		Offset:           req.Offset,
	})
	if err != nil {
		uc.logger.Error("Failed to list rooms", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	summaries := make([]dto.RoomSummary, 0, len(rooms))
	for i := range rooms {
		summaries = append(summaries, dto.NewRoomSummary(&rooms[i]))
	}

	return &dto.ListRoomsResponse{
		Rooms: summaries,
		Total: total,
	}, nil
}

// Rename - переименование помещения с инвалидацией кеша экспорта
func (uc *RoomUseCase) Rename(ctx context.Context, id string, req dto.RenameRoomRequest) error {
	roomID, err := uuid.Parse(id)
	if err != nil {
		return errors.ErrInvalidRoomID
	}

	renamed, err := uc.roomRepo.Rename(ctx, roomID, req.Name)
	if err != nil {
		uc.logger.Error("Failed to rename room", zap.String("room_id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if !renamed {
		return errors.ErrRoomNotFound
	}

	if err := uc.cacheRepo.InvalidateRoom(ctx, roomID.String()); err != nil {
		// Кеш не критичен - документы просто переживут TTL
		uc.logger.Warn("Failed to invalidate room cache", zap.String("room_id", id), zap.Error(err))
	}

	return nil
}

// Delete - удаление помещения с инвалидацией кеша экспорта
func (uc *RoomUseCase) Delete(ctx context.Context, id string) error {
	roomID, err := uuid.Parse(id)
	if err != nil {
		return errors.ErrInvalidRoomID
	}

	deleted, err := uc.roomRepo.Delete(ctx, roomID)
	if err != nil {
		uc.logger.Error("Failed to delete room", zap.String("room_id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if !deleted {
		return errors.ErrRoomNotFound
	}

	if err := uc.cacheRepo.InvalidateRoom(ctx, roomID.String()); err != nil {
		uc.logger.Warn("Failed to invalidate room cache", zap.String("room_id", id), zap.Error(err))
	}

	uc.logger.Info("Room deleted", zap.String("room_id", id))
	return nil
}

// Export - повторный экспорт сохранённого помещения из персистентной
// модели плана. Документы кешируются по ключу room/format/dimensions
func (uc *RoomUseCase) Export(ctx context.Context, req dto.ExportRoomRequest) (*dto.ExportResult, error) {
	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, errors.ErrInvalidRoomID
	}

	format, err := export.ParseFormat(req.Format)
	if err != nil {
		return nil, errors.ErrInvalidFormat
	}

	result := &dto.ExportResult{
		Format:      string(format),
		ContentType: format.ContentType(),
		Filename:    fmt.Sprintf("room-%s%s", roomID, format.FileExtension()),
	}

	// Сначала пробуем кеш
	cached, err := uc.cacheRepo.GetExport(ctx, roomID.String(), string(format), req.IncludeDimensions)
	if err != nil {
		uc.logger.Warn("Export cache lookup failed", zap.String("room_id", req.RoomID), zap.Error(err))
	}
	if cached != nil {
		result.Document = string(cached)
		return result, nil
	}

	room, err := uc.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		uc.logger.Error("Failed to get room for export", zap.String("room_id", req.RoomID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	if room == nil {
		return nil, errors.ErrRoomNotFound
	}

	doc, err := export.Export(room.Plan, format, req.IncludeDimensions)
	if err != nil {
		uc.logger.Error("Failed to export room", zap.String("room_id", req.RoomID), zap.Error(err))
		return nil, errors.ErrInvalidFormat
	}
	result.Document = doc

	if err := uc.cacheRepo.SetExport(ctx, roomID.String(), string(format), req.IncludeDimensions, []byte(doc), uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache exported document", zap.String("room_id", req.RoomID), zap.Error(err))
	}

	uc.logger.Info("Room exported",
		zap.String("room_id", req.RoomID),
		zap.String("format", string(format)),
		zap.Bool("dimensions", req.IncludeDimensions),
		zap.Int("document_bytes", len(doc)))

	return result, nil
}

// objectCategoriesOf собирает уникальные категории объектов для
// денормализованного фильтра списка помещений
func objectCategoriesOf(surfaces []domain.SurfaceRecord) []string {
	seen := make(map[string]bool)
	var categories []string

	for _, s := range surfaces {
		if s.Kind != domain.SurfaceObject || s.Category == "" {
			continue
		}
		if !seen[s.Category] {
			seen[s.Category] = true
			categories = append(categories, s.Category)
		}
	}

	return categories
}
