package export

import (
	"fmt"

	"github.com/floorplan-microservice/internal/domain"
)

// Format - целевой формат экспорта
type Format string

const (
	FormatSVG Format = "svg"
	FormatDXF Format = "dxf"
)

// ParseFormat разбирает строковое имя формата
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatSVG:
		return FormatSVG, nil
	case FormatDXF:
		return FormatDXF, nil
	default:
		return "", fmt.Errorf("unknown export format %q", s)
	}
}

// ContentType возвращает MIME-тип документа формата
func (f Format) ContentType() string {
	switch f {
	case FormatDXF:
		return "application/dxf"
	default:
		return "image/svg+xml"
	}
}

// FileExtension возвращает расширение файла формата
func (f Format) FileExtension() string {
	return "." + string(f)
}

// Export сериализует модель плана в выбранный формат.
// Единственная ошибка - неизвестный формат; оба кодировщика тотальны
// для любой корректной модели, включая пустую.
func Export(plan domain.FloorPlanData, format Format, includeDimensions bool) (string, error) {
	switch format {
	case FormatSVG:
		return EncodeSVG(plan, includeDimensions), nil
	case FormatDXF:
		return EncodeDXF(plan, includeDimensions), nil
	default:
		return "", fmt.Errorf("unknown export format %q", format)
	}
}
