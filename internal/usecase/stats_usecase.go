package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/floorplan-microservice/internal/domain"
	"github.com/floorplan-microservice/internal/domain/repository"
	"github.com/floorplan-microservice/internal/pkg/errors"
)

// StatsUseCase - use case для статистики по сохранённым помещениям
type StatsUseCase struct {
	roomRepo  repository.RoomRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

// NewStatsUseCase - создание нового StatsUseCase
func NewStatsUseCase(
	roomRepo repository.RoomRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *StatsUseCase {
	return &StatsUseCase{
		roomRepo:  roomRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// GetStatistics - агрегированная статистика, с кешированием
func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	cached, err := uc.cacheRepo.GetStats(ctx)
	if err != nil {
		uc.logger.Warn("Stats cache lookup failed", zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	stats, err := uc.roomRepo.GetStatistics(ctx)
	if err != nil {
		uc.logger.Error("Failed to get statistics", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if err := uc.cacheRepo.SetStats(ctx, stats, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache statistics", zap.Error(err))
	}

	return stats, nil
}
