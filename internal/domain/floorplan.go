package domain

// ElementKind - тип элемента 2D плана помещения (закрытый набор)
type ElementKind string

const (
	ElementWall    ElementKind = "wall"
	ElementDoor    ElementKind = "door"
	ElementWindow  ElementKind = "window"
	ElementOpening ElementKind = "opening"
	ElementObject  ElementKind = "object"
)

// Rect - прямоугольник элемента на плане, в метрах
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// MaxX возвращает правую границу прямоугольника
func (r Rect) MaxX() float64 {
	return r.X + r.Width
}

// MaxY возвращает нижнюю границу прямоугольника
func (r Rect) MaxY() float64 {
	return r.Y + r.Height
}

// CenterX возвращает X-координату центра
func (r Rect) CenterX() float64 {
	return r.X + r.Width/2
}

// CenterY возвращает Y-координату центра
func (r Rect) CenterY() float64 {
	return r.Y + r.Height/2
}

// BoundingBox - ограничивающий прямоугольник плана, в метрах
type BoundingBox struct {
	MinX float64 `json:"minX"`
	MinY float64 `json:"minY"`
	MaxX float64 `json:"maxX"`
	MaxY float64 `json:"maxY"`
}

// Width возвращает ширину ограничивающего прямоугольника
func (b BoundingBox) Width() float64 {
	return b.MaxX - b.MinX
}

// Height возвращает высоту ограничивающего прямоугольника
func (b BoundingBox) Height() float64 {
	return b.MaxY - b.MinY
}

// RoomDimensions - габариты помещения, вычисленные только по стенам.
// Height здесь - вертикальный размер (до потолка), в отличие от
// 2D BoundingBox, где обе оси лежат в горизонтальной плоскости.
type RoomDimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

// FloorPlanElement - 2D проекция одной поверхности на горизонтальную плоскость
type FloorPlanElement struct {
	Rect     Rect        `json:"rect"`
	Rotation float64     `json:"rotation"`
	Kind     ElementKind `json:"type"`
	Label    string      `json:"label,omitempty"`
}

// FloorPlanData - нормализованная 2D модель плана помещения.
// Порядок элементов фиксирован: стены, двери, окна, проёмы, объекты.
// Строится заново на каждый запрос и после построения не изменяется.
type FloorPlanData struct {
	Elements       []FloorPlanElement `json:"elements"`
	BoundingBox    BoundingBox        `json:"boundingBox"`
	RoomDimensions RoomDimensions     `json:"roomDimensions"`
}

// ElementsByKind возвращает элементы заданного типа, сохраняя порядок
func (p FloorPlanData) ElementsByKind(kind ElementKind) []FloorPlanElement {
	var out []FloorPlanElement
	for _, e := range p.Elements {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
