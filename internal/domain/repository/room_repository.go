package repository

import (
	"context"

	"github.com/floorplan-microservice/internal/domain"
	"github.com/google/uuid"
)

// RoomFilter - параметры выборки сохранённых помещений
type RoomFilter struct {
	ObjectCategories []string
	Limit            int
	Offset           int
}

// RoomRepository определяет методы для работы с сохранёнными помещениями
type RoomRepository interface {
	// Create сохраняет помещение вместе с построенной моделью плана
	Create(ctx context.Context, room *domain.SavedRoom) error

	// GetByID возвращает помещение по идентификатору (nil, если не найдено)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SavedRoom, error)

	// List возвращает помещения по фильтру, отсортированные по дате создания
	List(ctx context.Context, filter RoomFilter) ([]domain.SavedRoom, int, error)

	// Rename обновляет имя помещения; возвращает false, если помещение не найдено
	Rename(ctx context.Context, id uuid.UUID, name string) (bool, error)

	// Delete удаляет помещение; возвращает false, если помещение не найдено
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// GetStatistics возвращает агрегированную статистику по помещениям
	GetStatistics(ctx context.Context) (*domain.Statistics, error)
}
