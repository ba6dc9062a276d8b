package repository

import (
	"context"
	"time"

	"github.com/floorplan-microservice/internal/domain"
)

// CacheRepository определяет методы для работы с кешем
type CacheRepository interface {
	// Get получает значение из кеша по ключу
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// GetExport получает закешированный экспортированный документ
	GetExport(ctx context.Context, roomID, format string, includeDimensions bool) ([]byte, error)

	// SetExport сохраняет экспортированный документ в кеше
	SetExport(ctx context.Context, roomID, format string, includeDimensions bool, doc []byte, ttl time.Duration) error

	// InvalidateRoom удаляет все закешированные документы помещения
	InvalidateRoom(ctx context.Context, roomID string) error

	// GetStats получает статистику из кеша
	GetStats(ctx context.Context) (*domain.Statistics, error)

	// SetStats сохраняет статистику в кеше
	SetStats(ctx context.Context, stats *domain.Statistics, ttl time.Duration) error
}
