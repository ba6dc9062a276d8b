package floorplan

import (
	"math"

	"github.com/floorplan-microservice/internal/domain"
)

// Build строит нормализованную 2D модель плана из списка поверхностей.
// Проекция сверху: горизонтальные оси X/Z поверхности становятся осями
// плана, вертикальная ось Y отбрасывается (но учитывается в габаритах
// помещения). Порядок элементов фиксирован: стены, двери, окна, проёмы,
// объекты; внутри группы сохраняется порядок входного списка.
//
// Функция тотальна: для любого корректного входа ошибок нет, пустой вход
// даёт пустую модель с нулевым bounding box.
func Build(surfaces []domain.SurfaceRecord) domain.FloorPlanData {
	plan := domain.FloorPlanData{}

	kindOrder := []struct {
		surface domain.SurfaceKind
		element domain.ElementKind
	}{
		{domain.SurfaceWall, domain.ElementWall},
		{domain.SurfaceDoor, domain.ElementDoor},
		{domain.SurfaceWindow, domain.ElementWindow},
		{domain.SurfaceOpening, domain.ElementOpening},
		{domain.SurfaceObject, domain.ElementObject},
	}

	for _, k := range kindOrder {
		for _, s := range surfaces {
			if s.Kind != k.surface {
				continue
			}

			element := domain.FloorPlanElement{
				Rect:     projectRect(s),
				Rotation: s.Transform.RotationY(),
				Kind:     k.element,
			}
			if k.element == domain.ElementObject {
				element.Label = LabelForCategory(s.Category)
			}

			plan.Elements = append(plan.Elements, element)
		}
	}

	plan.BoundingBox = boundingBoxOf(plan.Elements)
	plan.RoomDimensions = roomDimensionsOf(surfaces)

	return plan
}

// projectRect проецирует поверхность на горизонтальную плоскость:
// центр в мировых X/Z минус половина габарита
func projectRect(s domain.SurfaceRecord) domain.Rect {
	x, _, z := s.Transform.Position()
	width := math.Max(0, s.Extent.Width)
	depth := math.Max(0, s.Extent.Depth)

	return domain.Rect{
		X:      x - width/2,
		Y:      z - depth/2,
		Width:  width,
		Height: depth,
	}
}

// boundingBoxOf возвращает min/max по углам всех прямоугольников;
// для пустого списка - нулевой box
func boundingBoxOf(elements []domain.FloorPlanElement) domain.BoundingBox {
	if len(elements) == 0 {
		return domain.BoundingBox{}
	}

	box := domain.BoundingBox{
		MinX: math.MaxFloat64,
		MinY: math.MaxFloat64,
		MaxX: -math.MaxFloat64,
		MaxY: -math.MaxFloat64,
	}

	for _, e := range elements {
		box.MinX = math.Min(box.MinX, e.Rect.X)
		box.MinY = math.Min(box.MinY, e.Rect.Y)
		box.MaxX = math.Max(box.MaxX, e.Rect.MaxX())
		box.MaxY = math.Max(box.MaxY, e.Rect.MaxY())
	}

	return box
}

// roomDimensionsOf вычисляет габариты помещения независимо от общего
// bounding box: ширина и глубина - по проекциям только стен, высота -
// максимальный вертикальный габарит стены
func roomDimensionsOf(surfaces []domain.SurfaceRecord) domain.RoomDimensions {
	var (
		hasWalls   bool
		minX, minY = math.MaxFloat64, math.MaxFloat64
		maxX, maxY = -math.MaxFloat64, -math.MaxFloat64
		height     float64
	)

	for _, s := range surfaces {
		if s.Kind != domain.SurfaceWall {
			continue
		}
		hasWalls = true

		rect := projectRect(s)
		minX = math.Min(minX, rect.X)
		minY = math.Min(minY, rect.Y)
		maxX = math.Max(maxX, rect.MaxX())
		maxY = math.Max(maxY, rect.MaxY())
		height = math.Max(height, s.Extent.Height)
	}

	if !hasWalls {
		return domain.RoomDimensions{}
	}

	return domain.RoomDimensions{
		Width:  maxX - minX,
		Height: height,
		Depth:  maxY - minY,
	}
}
