package floorplan

import (
	"github.com/floorplan-microservice/internal/domain"
	"github.com/floorplan-microservice/internal/pkg/errors"
)

// ValidateSurfaces проверяет геометрию поверхностей на NaN/Inf.
// Сам Build тотален и деградировавшую геометрию не фильтрует, поэтому
// границы сервиса (HTTP, воркер) обязаны вызывать эту проверку до
// построения, иначе NaN просочится в экспортированные документы.
func ValidateSurfaces(surfaces []domain.SurfaceRecord) error {
	for i, s := range surfaces {
		if !s.Transform.IsFinite() {
			return errors.ErrMalformedGeometry.WithDetails(map[string]interface{}{
				"surface_index": i,
				"field":         "transform",
			})
		}
		if !s.Extent.IsFinite() {
			return errors.ErrMalformedGeometry.WithDetails(map[string]interface{}{
				"surface_index": i,
				"field":         "extent",
			})
		}
	}
	return nil
}
