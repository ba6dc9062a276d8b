package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/floorplan-microservice/internal/pkg/utils"
	"github.com/floorplan-microservice/internal/usecase"
)

// StatsHandler - обработчик статистики
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

// NewStatsHandler - создание нового StatsHandler
func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetStatistics - агрегированная статистика по сохранённым помещениям
// @Summary Get statistics
// @Tags stats
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.Statistics}
// @Router /api/v1/stats [get]
func (h *StatsHandler) GetStatistics(c *fiber.Ctx) error {
	result, err := h.statsUC.GetStatistics(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
