package domain

import "math"

// SurfaceKind - тип исходной поверхности, полученной от подсистемы сканирования
type SurfaceKind string

const (
	SurfaceWall    SurfaceKind = "wall"
	SurfaceDoor    SurfaceKind = "door"
	SurfaceWindow  SurfaceKind = "window"
	SurfaceOpening SurfaceKind = "opening"
	SurfaceObject  SurfaceKind = "object"
)

// Transform - пространственная матрица 4x4 (column-major, как simd_float4x4):
// колонки 0-2 - локальные оси X/Y/Z, колонка 3 - позиция в мире.
type Transform [16]float64

// Position возвращает мировую позицию (x, y, z)
func (t Transform) Position() (float64, float64, float64) {
	return t[12], t[13], t[14]
}

// RotationY возвращает угол поворота вокруг вертикальной оси в радианах:
// знаковый угол локальной оси X, спроецированной на горизонтальную
// плоскость, в диапазоне (-pi, pi].
func (t Transform) RotationY() float64 {
	return math.Atan2(t[2], t[0])
}

// IsFinite проверяет, что все компоненты матрицы конечны
func (t Transform) IsFinite() bool {
	for _, v := range t {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// IdentityTransform возвращает единичную матрицу
func IdentityTransform() Transform {
	return Transform{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// TranslatedTransform возвращает единичную матрицу с позицией (x, y, z)
func TranslatedTransform(x, y, z float64) Transform {
	t := IdentityTransform()
	t[12], t[13], t[14] = x, y, z
	return t
}

// RotatedYTransform возвращает матрицу с поворотом angle вокруг
// вертикальной оси и позицией (x, y, z)
func RotatedYTransform(angle, x, y, z float64) Transform {
	sin, cos := math.Sin(angle), math.Cos(angle)
	t := IdentityTransform()
	t[0], t[2] = cos, sin
	t[8], t[10] = -sin, cos
	t[12], t[13], t[14] = x, y, z
	return t
}

// Extent - габариты поверхности в метрах
type Extent struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

// IsFinite проверяет, что все габариты конечны
func (e Extent) IsFinite() bool {
	for _, v := range [3]float64{e.Width, e.Height, e.Depth} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// SurfaceRecord - одна поверхность или объект из результата сканирования.
// Category заполняется только для Kind == SurfaceObject.
type SurfaceRecord struct {
	Kind      SurfaceKind `json:"kind"`
	Transform Transform   `json:"transform"`
	Extent    Extent      `json:"extent"`
	Category  string      `json:"category,omitempty"`
}
