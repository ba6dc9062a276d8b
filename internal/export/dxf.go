package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/floorplan-microservice/internal/domain"
)

// Имена слоёв DXF документа
const (
	dxfLayerWalls      = "WALLS"
	dxfLayerDoors      = "DOORS"
	dxfLayerWindows    = "WINDOWS"
	dxfLayerObjects    = "OBJECTS"
	dxfLayerDimensions = "DIMENSIONS"
)

const (
	// dxfTextHeight - высота TEXT-сущностей подписей объектов, units
	dxfTextHeight = 0.15
	// dxfDimensionOffset - смещение размерных подписей от края плана, units
	dxfDimensionOffset = 0.3
)

// dxfLayers - объявления слоёв с фиксированными цветовыми индексами AutoCAD
var dxfLayers = []struct {
	name  string
	color int
}{
	{dxfLayerWalls, 7},
	{dxfLayerDoors, 1},
	{dxfLayerWindows, 5},
	{dxfLayerObjects, 8},
	{dxfLayerDimensions, 3},
}

// EncodeDXF сериализует модель плана в ASCII DXF документ (AC1015).
// В отличие от SVG, мировые метры используются как DXF units напрямую
// (масштаб 1.0), а план смещается так, чтобы минимальный угол bounding
// box попал в начало координат - это намеренное различие форматов.
// Проёмы присутствуют в модели, но сущностями DXF не эмитятся.
func EncodeDXF(plan domain.FloorPlanData, includeDimensions bool) string {
	w := newDXFWriter(len(plan.Elements))

	writeDXFHeader(w)
	writeDXFTables(w)
	writeDXFEntities(w, plan, includeDimensions)

	w.tag(0, "EOF")
	return w.String()
}

// writeDXFHeader эмитит секцию HEADER: версия формата и единицы вставки (метры)
func writeDXFHeader(w *dxfWriter) {
	w.tag(0, "SECTION")
	w.tag(2, "HEADER")
	w.tag(9, "$ACADVER")
	w.tag(1, "AC1015")
	w.tag(9, "$INSUNITS")
	w.tagInt(70, 6)
	w.tag(0, "ENDSEC")
}

// writeDXFTables эмитит секцию TABLES с пятью именованными слоями
func writeDXFTables(w *dxfWriter) {
	w.tag(0, "SECTION")
	w.tag(2, "TABLES")
	w.tag(0, "TABLE")
	w.tag(2, "LAYER")
	w.tagInt(70, len(dxfLayers))

	for _, layer := range dxfLayers {
		w.tag(0, "LAYER")
		w.tag(2, layer.name)
		w.tagInt(70, 0)
		w.tagInt(62, layer.color)
		w.tag(6, "CONTINUOUS")
	}

	w.tag(0, "ENDTAB")
	w.tag(0, "ENDSEC")
}

// writeDXFEntities эмитит секцию ENTITIES: по одному замкнутому
// LWPOLYLINE на стену/дверь/окно/объект плюс TEXT-подписи
func writeDXFEntities(w *dxfWriter, plan domain.FloorPlanData, includeDimensions bool) {
	w.tag(0, "SECTION")
	w.tag(2, "ENTITIES")

	box := plan.BoundingBox

	for _, group := range []struct {
		kind  domain.ElementKind
		layer string
	}{
		{domain.ElementWall, dxfLayerWalls},
		{domain.ElementDoor, dxfLayerDoors},
		{domain.ElementWindow, dxfLayerWindows},
		{domain.ElementObject, dxfLayerObjects},
	} {
		for _, e := range plan.Elements {
			if e.Kind != group.kind {
				continue
			}
			writeDXFRect(w, e.Rect, box, group.layer)

			if e.Kind == domain.ElementObject && e.Label != "" {
				writeDXFText(w, e.Label,
					e.Rect.CenterX()-box.MinX,
					e.Rect.CenterY()-box.MinY,
					dxfTextHeight, dxfLayerObjects)
			}
		}
	}

	if includeDimensions {
		writeDXFDimensions(w, plan)
	}

	w.tag(0, "ENDSEC")
}

// writeDXFRect эмитит замкнутый LWPOLYLINE из четырёх вершин в порядке
// (min,min) -> (max,min) -> (max,max) -> (min,max)
func writeDXFRect(w *dxfWriter, rect domain.Rect, box domain.BoundingBox, layer string) {
	minX := rect.X - box.MinX
	minY := rect.Y - box.MinY
	maxX := rect.MaxX() - box.MinX
	maxY := rect.MaxY() - box.MinY

	w.tag(0, "LWPOLYLINE")
	w.tag(8, layer)
	w.tagInt(90, 4)
	w.tagInt(70, 1) // closed

	vertices := [4][2]float64{
		{minX, minY},
		{maxX, minY},
		{maxX, maxY},
		{minX, maxY},
	}
	for _, v := range vertices {
		w.tagFloat(10, v[0])
		w.tagFloat(20, v[1])
	}
}

// writeDXFText эмитит TEXT-сущность с центральным выравниванием
func writeDXFText(w *dxfWriter, text string, x, y, height float64, layer string) {
	w.tag(0, "TEXT")
	w.tag(8, layer)
	w.tagFloat(10, x)
	w.tagFloat(20, y)
	w.tagFloat(40, height)
	w.tag(1, text)
	w.tagInt(72, 1) // horizontal center
	w.tagFloat(11, x)
	w.tagFloat(21, y)
}

// writeDXFDimensions эмитит две размерные подписи на слое DIMENSIONS:
// ширину помещения под планом (y = -0.3) и глубину справа от плана
// (x = ширина плана + 0.3). Формат "%.2f m" - с ведущим пробелом перед
// единицей, в отличие от SVG; внешние потребители зависят от него.
func writeDXFDimensions(w *dxfWriter, plan domain.FloorPlanData) {
	box := plan.BoundingBox
	planWidth := box.Width()
	planHeight := box.Height()

	widthLabel := fmt.Sprintf("%.2f m", plan.RoomDimensions.Width)
	depthLabel := fmt.Sprintf("%.2f m", plan.RoomDimensions.Depth)

	writeDXFText(w, widthLabel, planWidth/2, -dxfDimensionOffset, dxfTextHeight, dxfLayerDimensions)
	writeDXFText(w, depthLabel, planWidth+dxfDimensionOffset, planHeight/2, dxfTextHeight, dxfLayerDimensions)
}

// dxfWriter накапливает пары "групповой код / значение" формата DXF
type dxfWriter struct {
	b strings.Builder
}

func newDXFWriter(elementCount int) *dxfWriter {
	w := &dxfWriter{}
	w.b.Grow(1024 + elementCount*160)
	return w
}

func (w *dxfWriter) tag(code int, value string) {
	w.b.WriteString(strconv.Itoa(code))
	w.b.WriteByte('\n')
	w.b.WriteString(value)
	w.b.WriteByte('\n')
}

func (w *dxfWriter) tagInt(code, value int) {
	w.tag(code, strconv.Itoa(value))
}

func (w *dxfWriter) tagFloat(code int, value float64) {
	w.tag(code, strconv.FormatFloat(value, 'f', -1, 64))
}

func (w *dxfWriter) String() string {
	return w.b.String()
}
