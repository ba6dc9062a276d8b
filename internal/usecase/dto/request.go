package dto

import "github.com/floorplan-microservice/internal/domain"

// ExtentInput - габариты поверхности в метрах
type ExtentInput struct {
	Width  float64 `json:"width" validate:"min=0"`
	Height float64 `json:"height" validate:"min=0"`
	Depth  float64 `json:"depth" validate:"min=0"`
}

// SurfaceInput - одна поверхность из результата сканирования.
// Transform - матрица 4x4 (column-major, 16 значений); проверка на
// NaN/Inf выполняется отдельно на уровне use case.
type SurfaceInput struct {
	Kind      string      `json:"kind" validate:"required,oneof=wall door window opening object"`
	Transform [16]float64 `json:"transform"`
	Extent    ExtentInput `json:"extent"`
	Category  string      `json:"category,omitempty"`
}

// ToDomain преобразует входную поверхность в domain.SurfaceRecord
func (s SurfaceInput) ToDomain() domain.SurfaceRecord {
	return domain.SurfaceRecord{
		Kind:      domain.SurfaceKind(s.Kind),
		Transform: domain.Transform(s.Transform),
		Extent: domain.Extent{
			Width:  s.Extent.Width,
			Height: s.Extent.Height,
			Depth:  s.Extent.Depth,
		},
		Category: s.Category,
	}
}

// ConvertSurfaces преобразует список входных поверхностей в domain
func ConvertSurfaces(surfaces []SurfaceInput) []domain.SurfaceRecord {
	out := make([]domain.SurfaceRecord, len(surfaces))
	for i, s := range surfaces {
		out[i] = s.ToDomain()
	}
	return out
}

// BuildFloorPlanRequest - запрос на построение 2D модели плана.
// Пустой список поверхностей допустим и даёт пустую модель.
type BuildFloorPlanRequest struct {
	Surfaces []SurfaceInput `json:"surfaces" validate:"dive"`
}

// ExportSurfacesRequest - запрос на экспорт плана напрямую из поверхностей
type ExportSurfacesRequest struct {
	Surfaces          []SurfaceInput `json:"surfaces" validate:"dive"`
	Format            string         `json:"format" validate:"required,oneof=svg dxf"`
	IncludeDimensions bool           `json:"include_dimensions"`
}

// SaveRoomRequest - запрос на сохранение помещения
type SaveRoomRequest struct {
	Name     string         `json:"name" validate:"required,min=1,max=200"`
	Surfaces []SurfaceInput `json:"surfaces" validate:"required,min=1,dive"`
}

// RenameRoomRequest - запрос на переименование помещения
type RenameRoomRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// ListRoomsRequest - параметры списка сохранённых помещений
type ListRoomsRequest struct {
	Categories []string `json:"categories,omitempty"`
	Limit      int      `json:"limit" validate:"omitempty,min=1,max=100"`
	Offset     int      `json:"offset" validate:"min=0"`
}

// ExportRoomRequest - параметры повторного экспорта сохранённого помещения
type ExportRoomRequest struct {
	RoomID            string `json:"room_id" validate:"required"`
	Format            string `json:"format" validate:"required,oneof=svg dxf"`
	IncludeDimensions bool   `json:"include_dimensions"`
}
