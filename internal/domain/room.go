package domain

import (
	"time"

	"github.com/google/uuid"
)

// SavedRoom - сохранённое помещение с готовой 2D моделью плана.
// План хранится в JSONB и позволяет повторный экспорт без пересканирования.
type SavedRoom struct {
	ID               uuid.UUID     `json:"id" db:"id"`
	Name             string        `json:"name" db:"name"`
	Plan             FloorPlanData `json:"plan" db:"-"`
	ElementCount     int           `json:"element_count" db:"element_count"`
	ObjectCategories []string      `json:"object_categories,omitempty" db:"-"`
	CreatedAt        time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at" db:"updated_at"`
}

// Statistics - агрегированная статистика по сохранённым помещениям
type Statistics struct {
	TotalRooms        int            `json:"total_rooms"`
	TotalElements     int            `json:"total_elements"`
	ObjectsByCategory map[string]int `json:"objects_by_category"`
	LastSavedAt       *time.Time     `json:"last_saved_at,omitempty"`
	LastUpdated       time.Time      `json:"last_updated"`
}
