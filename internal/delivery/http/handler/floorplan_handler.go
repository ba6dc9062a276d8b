package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/floorplan-microservice/internal/pkg/utils"
	"github.com/floorplan-microservice/internal/pkg/validator"
	"github.com/floorplan-microservice/internal/usecase"
	"github.com/floorplan-microservice/internal/usecase/dto"
)

// FloorPlanHandler - обработчик построения и прямого экспорта планов
type FloorPlanHandler struct {
	floorPlanUC *usecase.FloorPlanUseCase
	logger      *zap.Logger
}

// NewFloorPlanHandler - создание нового FloorPlanHandler
func NewFloorPlanHandler(floorPlanUC *usecase.FloorPlanUseCase, logger *zap.Logger) *FloorPlanHandler {
	return &FloorPlanHandler{
		floorPlanUC: floorPlanUC,
		logger:      logger,
	}
}

// Build - построение 2D модели плана из списка поверхностей
// @Summary Build floor plan
// @Description Projects scanned 3D surfaces onto a normalized 2D floor-plan model
// @Tags floorplan
// @Accept json
// @Produce json
// @Param request body dto.BuildFloorPlanRequest true "Surfaces"
// @Success 200 {object} utils.SuccessResponse{data=dto.FloorPlanResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/floorplan [post]
func (h *FloorPlanHandler) Build(c *fiber.Ctx) error {
	var req dto.BuildFloorPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.floorPlanUC.Build(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.ElementCount,
	})
}

// Export - построение и экспорт плана одним запросом, отдаёт документ файлом
// @Summary Export floor plan
// @Description Builds a floor plan from surfaces and serializes it to SVG or DXF
// @Tags floorplan
// @Accept json
// @Produce image/svg+xml
// @Produce application/dxf
// @Param request body dto.ExportSurfacesRequest true "Surfaces and format"
// @Success 200 {string} string "Serialized document"
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/floorplan/export [post]
func (h *FloorPlanHandler) Export(c *fiber.Ctx) error {
	var req dto.ExportSurfacesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.floorPlanUC.ExportSurfaces(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return sendDocument(c, result)
}

// sendDocument отдаёт экспортированный документ с корректными заголовками
func sendDocument(c *fiber.Ctx, result *dto.ExportResult) error {
	c.Set(fiber.HeaderContentType, result.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+result.Filename+`"`)
	return c.SendString(result.Document)
}
