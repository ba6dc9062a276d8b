package domain

import "github.com/google/uuid"

// Stream names (должны совпадать с подсистемой сканирования)
const (
	StreamExportRequest = "stream:export:request"
	StreamExportDone    = "stream:export:done"
)

// ExportRequestEvent - входящее событие на экспорт завершённого скана
type ExportRequestEvent struct {
	RequestID         uuid.UUID       `json:"request_id"`
	RoomName          string          `json:"room_name"`
	Surfaces          []SurfaceRecord `json:"surfaces"`
	Formats           []string        `json:"formats,omitempty"`
	IncludeDimensions bool            `json:"include_dimensions"`
}

// HasSurfaces проверяет, что событие содержит хотя бы одну поверхность
func (e *ExportRequestEvent) HasSurfaces() bool {
	return len(e.Surfaces) > 0
}

// ExportDoneEvent - результат обработки запроса на экспорт
type ExportDoneEvent struct {
	RequestID    uuid.UUID `json:"request_id"`
	RoomID       uuid.UUID `json:"room_id,omitempty"`
	Formats      []string  `json:"formats,omitempty"`
	ElementCount int       `json:"element_count,omitempty"`
	Error        string    `json:"error,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
