package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/floorplan-microservice/internal/pkg/utils"
	"github.com/floorplan-microservice/internal/pkg/validator"
	"github.com/floorplan-microservice/internal/usecase"
	"github.com/floorplan-microservice/internal/usecase/dto"
)

// RoomHandler - обработчик CRUD операций над сохранёнными помещениями
type RoomHandler struct {
	roomUC *usecase.RoomUseCase
	logger *zap.Logger
}

// NewRoomHandler - создание нового RoomHandler
func NewRoomHandler(roomUC *usecase.RoomUseCase, logger *zap.Logger) *RoomHandler {
	return &RoomHandler{
		roomUC: roomUC,
		logger: logger,
	}
}

// Save - сохранение помещения: строит план из поверхностей и пишет его в БД
// @Summary Save room
// @Description Builds a floor plan from scanned surfaces and persists it
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body dto.SaveRoomRequest true "Room name and surfaces"
// @Success 201 {object} utils.SuccessResponse{data=dto.RoomResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/rooms [post]
func (h *RoomHandler) Save(c *fiber.Ctx) error {
	var req dto.SaveRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.roomUC.Save(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Status(fiber.StatusCreated)
	return utils.SendSuccess(c, result, nil)
}

// Get - получение сохранённого помещения по ID
// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.RoomResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/rooms/{id} [get]
func (h *RoomHandler) Get(c *fiber.Ctx) error {
	result, err := h.roomUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// List - список сохранённых помещений с фильтрацией по категориям объектов
// @Summary List rooms
// @Tags rooms
// @Produce json
// @Param categories query []string false "Object categories filter"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} utils.SuccessResponse{data=dto.ListRoomsResponse}
// @Router /api/v1/rooms [get]
func (h *RoomHandler) List(c *fiber.Ctx) error {
	var req dto.ListRoomsRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid query parameters"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.roomUC.List(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
		Limit: req.Limit,
	})
}

// Rename - переименование сохранённого помещения
// @Summary Rename room
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.RenameRoomRequest true "New name"
// @Success 200 {object} utils.SuccessResponse{data=dto.RoomResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/rooms/{id} [patch]
func (h *RoomHandler) Rename(c *fiber.Ctx) error {
	var req dto.RenameRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	if err := h.roomUC.Rename(c.Context(), c.Params("id"), req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.roomUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Delete - удаление сохранённого помещения
// @Summary Delete room
// @Tags rooms
// @Param id path string true "Room ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/rooms/{id} [delete]
func (h *RoomHandler) Delete(c *fiber.Ctx) error {
	if err := h.roomUC.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Export - экспорт сохранённого помещения в SVG или DXF
// @Summary Export saved room
// @Description Serializes the stored floor plan, export documents are cached
// @Tags rooms
// @Produce image/svg+xml
// @Produce application/dxf
// @Param id path string true "Room ID"
// @Param format query string true "Export format (svg or dxf)"
// @Param dimensions query bool false "Include dimension annotations"
// @Success 200 {string} string "Serialized document"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/rooms/{id}/export [get]
func (h *RoomHandler) Export(c *fiber.Ctx) error {
	req := dto.ExportRoomRequest{
		RoomID:            c.Params("id"),
		Format:            c.Query("format", "svg"),
		IncludeDimensions: c.QueryBool("dimensions", false),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.roomUC.Export(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return sendDocument(c, result)
}
