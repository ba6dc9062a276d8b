package dto

import (
	"time"

	"github.com/floorplan-microservice/internal/domain"
)

// FloorPlanResponse - построенная модель плана с краткой сводкой
type FloorPlanResponse struct {
	Plan         domain.FloorPlanData `json:"plan"`
	ElementCount int                  `json:"element_count"`
	CountsByKind map[string]int       `json:"counts_by_kind"`
}

// NewFloorPlanResponse собирает ответ из построенной модели
func NewFloorPlanResponse(plan domain.FloorPlanData) *FloorPlanResponse {
	counts := make(map[string]int)
	for _, e := range plan.Elements {
		counts[string(e.Kind)]++
	}

	return &FloorPlanResponse{
		Plan:         plan,
		ElementCount: len(plan.Elements),
		CountsByKind: counts,
	}
}

// ExportResult - экспортированный документ с метаданными для отдачи файла
type ExportResult struct {
	Format      string `json:"format"`
	ContentType string `json:"content_type"`
	Filename    string `json:"filename"`
	Document    string `json:"document"`
}

// RoomSummary - краткое описание сохранённого помещения (без модели плана)
type RoomSummary struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	ElementCount     int       `json:"element_count"`
	ObjectCategories []string  `json:"object_categories,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NewRoomSummary собирает краткое описание из domain.SavedRoom
func NewRoomSummary(room *domain.SavedRoom) RoomSummary {
	return RoomSummary{
		ID:               room.ID.String(),
		Name:             room.Name,
		ElementCount:     room.ElementCount,
		ObjectCategories: room.ObjectCategories,
		CreatedAt:        room.CreatedAt,
		UpdatedAt:        room.UpdatedAt,
	}
}

// RoomResponse - сохранённое помещение вместе с моделью плана
type RoomResponse struct {
	RoomSummary
	Plan domain.FloorPlanData `json:"plan"`
}

// NewRoomResponse собирает полный ответ из domain.SavedRoom
func NewRoomResponse(room *domain.SavedRoom) *RoomResponse {
	return &RoomResponse{
		RoomSummary: NewRoomSummary(room),
		Plan:        room.Plan,
	}
}

// ListRoomsResponse - страница списка помещений
type ListRoomsResponse struct {
	Rooms []RoomSummary `json:"rooms"`
	Total int           `json:"total"`
}
