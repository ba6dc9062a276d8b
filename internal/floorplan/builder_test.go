package floorplan_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floorplan-microservice/internal/domain"
	"github.com/floorplan-microservice/internal/floorplan"
)

func wallAt(x, z, width, height, depth float64) domain.SurfaceRecord {
	return domain.SurfaceRecord{
		Kind:      domain.SurfaceWall,
		Transform: domain.TranslatedTransform(x, height/2, z),
		Extent:    domain.Extent{Width: width, Height: height, Depth: depth},
	}
}

func TestBuild_EmptyInput(t *testing.T) {
	plan := floorplan.Build(nil)

	assert.Empty(t, plan.Elements)
	assert.Equal(t, domain.BoundingBox{}, plan.BoundingBox)
	assert.Equal(t, domain.RoomDimensions{}, plan.RoomDimensions)
}

func TestBuild_ProjectsCenterToTopLeft(t *testing.T) {
	// Стена 4x0.1 м с центром в (2, 1.5) по горизонтали
	plan := floorplan.Build([]domain.SurfaceRecord{
		wallAt(2.0, 1.5, 4.0, 2.5, 0.1),
	})

	require.Len(t, plan.Elements, 1)
	rect := plan.Elements[0].Rect

	assert.InDelta(t, 0.0, rect.X, 1e-9)
	assert.InDelta(t, 1.45, rect.Y, 1e-9)
	assert.InDelta(t, 4.0, rect.Width, 1e-9)
	assert.InDelta(t, 0.1, rect.Height, 1e-9)
}

func TestBuild_VerticalAxisDropped(t *testing.T) {
	// Поверхности на разной высоте проецируются в одинаковые прямоугольники
	low := floorplan.Build([]domain.SurfaceRecord{{
		Kind:      domain.SurfaceObject,
		Transform: domain.TranslatedTransform(1.0, 0.0, 1.0),
		Extent:    domain.Extent{Width: 1.0, Height: 0.5, Depth: 1.0},
	}})
	high := floorplan.Build([]domain.SurfaceRecord{{
		Kind:      domain.SurfaceObject,
		Transform: domain.TranslatedTransform(1.0, 10.0, 1.0),
		Extent:    domain.Extent{Width: 1.0, Height: 0.5, Depth: 1.0},
	}})

	assert.Equal(t, low.Elements[0].Rect, high.Elements[0].Rect)
}

func TestBuild_NegativeExtentClampedToZero(t *testing.T) {
	plan := floorplan.Build([]domain.SurfaceRecord{{
		Kind:      domain.SurfaceWall,
		Transform: domain.TranslatedTransform(3.0, 1.0, 2.0),
		Extent:    domain.Extent{Width: -4.0, Height: 2.5, Depth: -0.1},
	}})

	require.Len(t, plan.Elements, 1)
	rect := plan.Elements[0].Rect

	assert.Equal(t, 0.0, rect.Width)
	assert.Equal(t, 0.0, rect.Height)
	// Вырожденный прямоугольник остаётся в позиции центра
	assert.InDelta(t, 3.0, rect.X, 1e-9)
	assert.InDelta(t, 2.0, rect.Y, 1e-9)
}

func TestBuild_RotationFromTransform(t *testing.T) {
	tests := []struct {
		name     string
		angle    float64
		expected float64
	}{
		{"no rotation", 0, 0},
		{"quarter turn", math.Pi / 2, math.Pi / 2},
		{"negative angle", -math.Pi / 4, -math.Pi / 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := floorplan.Build([]domain.SurfaceRecord{{
				Kind:      domain.SurfaceWall,
				Transform: domain.RotatedYTransform(tt.angle, 0, 0, 0),
				Extent:    domain.Extent{Width: 1, Height: 1, Depth: 0.1},
			}})

			require.Len(t, plan.Elements, 1)
			assert.InDelta(t, tt.expected, plan.Elements[0].Rotation, 1e-9)
		})
	}
}

func TestBuild_GroupOrdering(t *testing.T) {
	// Вход намеренно перемешан; внутри групп порядок входа сохраняется
	surfaces := []domain.SurfaceRecord{
		{Kind: domain.SurfaceObject, Transform: domain.TranslatedTransform(1, 0, 1), Extent: domain.Extent{Width: 1, Depth: 1}, Category: "sofa"},
		{Kind: domain.SurfaceWall, Transform: domain.TranslatedTransform(0, 0, 0), Extent: domain.Extent{Width: 2, Depth: 0.1}},
		{Kind: domain.SurfaceOpening, Transform: domain.TranslatedTransform(2, 0, 0), Extent: domain.Extent{Width: 1, Depth: 0.1}},
		{Kind: domain.SurfaceDoor, Transform: domain.TranslatedTransform(1, 0, 0), Extent: domain.Extent{Width: 0.9, Depth: 0.1}},
		{Kind: domain.SurfaceWall, Transform: domain.TranslatedTransform(4, 0, 0), Extent: domain.Extent{Width: 2, Depth: 0.1}},
		{Kind: domain.SurfaceWindow, Transform: domain.TranslatedTransform(3, 0, 0), Extent: domain.Extent{Width: 1.2, Depth: 0.1}},
	}

	plan := floorplan.Build(surfaces)

	require.Len(t, plan.Elements, 6)
	kinds := make([]domain.ElementKind, len(plan.Elements))
	for i, e := range plan.Elements {
		kinds[i] = e.Kind
	}
	assert.Equal(t, []domain.ElementKind{
		domain.ElementWall,
		domain.ElementWall,
		domain.ElementDoor,
		domain.ElementWindow,
		domain.ElementOpening,
		domain.ElementObject,
	}, kinds)

	// Первая стена во входе осталась первой в группе
	assert.InDelta(t, -1.0, plan.Elements[0].Rect.X, 1e-9)
	assert.InDelta(t, 3.0, plan.Elements[1].Rect.X, 1e-9)
}

func TestBuild_ObjectLabels(t *testing.T) {
	object := func(category string) domain.SurfaceRecord {
		return domain.SurfaceRecord{
			Kind:      domain.SurfaceObject,
			Transform: domain.TranslatedTransform(0, 0, 0),
			Extent:    domain.Extent{Width: 1, Depth: 1},
			Category:  category,
		}
	}

	plan := floorplan.Build([]domain.SurfaceRecord{
		object("sofa"),
		object("television"),
		object("washerDryer"),
		object("hologram"),
		object(""),
	})

	require.Len(t, plan.Elements, 5)
	assert.Equal(t, "Sofa", plan.Elements[0].Label)
	assert.Equal(t, "TV", plan.Elements[1].Label)
	assert.Equal(t, "Washer/Dryer", plan.Elements[2].Label)
	// Неизвестные и пустые категории получают обобщённую подпись
	assert.Equal(t, "Object", plan.Elements[3].Label)
	assert.Equal(t, "Object", plan.Elements[4].Label)
}

func TestBuild_NonObjectsHaveNoLabel(t *testing.T) {
	plan := floorplan.Build([]domain.SurfaceRecord{
		wallAt(0, 0, 2, 2.5, 0.1),
	})

	require.Len(t, plan.Elements, 1)
	assert.Empty(t, plan.Elements[0].Label)
}

func TestBuild_BoundingBoxCoversAllElements(t *testing.T) {
	plan := floorplan.Build([]domain.SurfaceRecord{
		wallAt(2.0, 0.05, 4.0, 2.5, 0.1), // x: [0, 4], y: [0, 0.1]
		{
			Kind:      domain.SurfaceObject,
			Transform: domain.TranslatedTransform(5.0, 0, 2.0),
			Extent:    domain.Extent{Width: 1.0, Height: 0.8, Depth: 1.0},
		}, // x: [4.5, 5.5], y: [1.5, 2.5]
	})

	box := plan.BoundingBox
	assert.InDelta(t, 0.0, box.MinX, 1e-9)
	assert.InDelta(t, 0.0, box.MinY, 1e-9)
	assert.InDelta(t, 5.5, box.MaxX, 1e-9)
	assert.InDelta(t, 2.5, box.MaxY, 1e-9)
}

func TestBuild_RoomDimensionsFromWallsOnly(t *testing.T) {
	plan := floorplan.Build([]domain.SurfaceRecord{
		wallAt(2.0, 0.05, 4.0, 2.5, 0.1),
		wallAt(2.0, 2.95, 4.0, 2.7, 0.1),
		{
			// Объект за пределами стен не влияет на габариты помещения
			Kind:      domain.SurfaceObject,
			Transform: domain.TranslatedTransform(10.0, 0, 10.0),
			Extent:    domain.Extent{Width: 2.0, Height: 0.8, Depth: 2.0},
		},
	})

	dims := plan.RoomDimensions
	assert.InDelta(t, 4.0, dims.Width, 1e-9)
	assert.InDelta(t, 3.0, dims.Depth, 1e-9)
	// Высота - максимальный вертикальный габарит среди стен
	assert.InDelta(t, 2.7, dims.Height, 1e-9)

	// Bounding box при этом покрывает и объект
	assert.InDelta(t, 11.0, plan.BoundingBox.MaxX, 1e-9)
}

func TestBuild_NoWallsZeroRoomDimensions(t *testing.T) {
	plan := floorplan.Build([]domain.SurfaceRecord{
		{
			Kind:      domain.SurfaceObject,
			Transform: domain.TranslatedTransform(1, 0, 1),
			Extent:    domain.Extent{Width: 1, Height: 1, Depth: 1},
			Category:  "table",
		},
	})

	assert.Equal(t, domain.RoomDimensions{}, plan.RoomDimensions)
	assert.NotEmpty(t, plan.Elements)
}

func TestLabelForCategory_AllKnownCategories(t *testing.T) {
	known := map[string]string{
		"bathtub":      "Bathtub",
		"bed":          "Bed",
		"chair":        "Chair",
		"dishwasher":   "Dishwasher",
		"fireplace":    "Fireplace",
		"oven":         "Oven",
		"refrigerator": "Refrigerator",
		"sink":         "Sink",
		"sofa":         "Sofa",
		"stairs":       "Stairs",
		"storage":      "Storage",
		"stove":        "Stove",
		"table":        "Table",
		"television":   "TV",
		"toilet":       "Toilet",
		"washerDryer":  "Washer/Dryer",
	}

	for category, expected := range known {
		assert.Equal(t, expected, floorplan.LabelForCategory(category), category)
	}
}
