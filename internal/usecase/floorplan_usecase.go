package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/floorplan-microservice/internal/export"
	"github.com/floorplan-microservice/internal/floorplan"
	"github.com/floorplan-microservice/internal/pkg/errors"
	"github.com/floorplan-microservice/internal/usecase/dto"
)

// FloorPlanUseCase - use case для построения и экспорта планов помещений
type FloorPlanUseCase struct {
	logger *zap.Logger
}

// NewFloorPlanUseCase - создание нового FloorPlanUseCase
func NewFloorPlanUseCase(logger *zap.Logger) *FloorPlanUseCase {
	return &FloorPlanUseCase{
		logger: logger,
	}
}

// Build - построение 2D модели плана из списка поверхностей
func (uc *FloorPlanUseCase) Build(ctx context.Context, req dto.BuildFloorPlanRequest) (*dto.FloorPlanResponse, error) {
	surfaces := dto.ConvertSurfaces(req.Surfaces)

	// Отсекаем NaN/Inf до построения, иначе они попадут в документы
	if err := floorplan.ValidateSurfaces(surfaces); err != nil {
		uc.logger.Warn("Rejected malformed surface geometry", zap.Error(err))
		return nil, err
	}

	plan := floorplan.Build(surfaces)

	uc.logger.Debug("Floor plan built",
		zap.Int("surfaces", len(surfaces)),
		zap.Int("elements", len(plan.Elements)))

	return dto.NewFloorPlanResponse(plan), nil
}

// ExportSurfaces - построение плана и экспорт в выбранный формат одним шагом
func (uc *FloorPlanUseCase) ExportSurfaces(ctx context.Context, req dto.ExportSurfacesRequest) (*dto.ExportResult, error) {
	format, err := export.ParseFormat(req.Format)
	if err != nil {
		return nil, errors.ErrInvalidFormat
	}

	surfaces := dto.ConvertSurfaces(req.Surfaces)
	if err := floorplan.ValidateSurfaces(surfaces); err != nil {
		uc.logger.Warn("Rejected malformed surface geometry", zap.Error(err))
		return nil, err
	}

	plan := floorplan.Build(surfaces)

	doc, err := export.Export(plan, format, req.IncludeDimensions)
	if err != nil {
		uc.logger.Error("Failed to export floor plan", zap.Error(err))
		return nil, errors.ErrInvalidFormat
	}

	uc.logger.Info("Floor plan exported",
		zap.String("format", string(format)),
		zap.Int("elements", len(plan.Elements)),
		zap.Bool("dimensions", req.IncludeDimensions),
		zap.Int("document_bytes", len(doc)))

	return &dto.ExportResult{
		Format:      string(format),
		ContentType: format.ContentType(),
		Filename:    fmt.Sprintf("floorplan%s", format.FileExtension()),
		Document:    doc,
	}, nil
}
