package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/floorplan-microservice/internal/domain"
	"github.com/floorplan-microservice/internal/domain/repository"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type roomRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewRoomRepository создает новый экземпляр room repository
func NewRoomRepository(db *DB, logger *zap.Logger) repository.RoomRepository {
	return &roomRepository{
		db:     db,
		logger: logger,
	}
}

// savedRoomRow - строка таблицы saved_rooms
type savedRoomRow struct {
	ID               uuid.UUID      `db:"id"`
	Name             string         `db:"name"`
	FloorPlan        []byte         `db:"floor_plan"`
	ElementCount     int            `db:"element_count"`
	ObjectCategories pq.StringArray `db:"object_categories"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

func (r *savedRoomRow) toDomain() (*domain.SavedRoom, error) {
	room := &domain.SavedRoom{
		ID:               r.ID,
		Name:             r.Name,
		ElementCount:     r.ElementCount,
		ObjectCategories: []string(r.ObjectCategories),
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}

	if err := json.Unmarshal(r.FloorPlan, &room.Plan); err != nil {
		return nil, fmt.Errorf("unmarshal floor plan: %w", err)
	}

	return room, nil
}

// Create сохраняет помещение; план сериализуется в JSONB в сопутствующем
// формате (elements/boundingBox/roomDimensions), что позволяет повторный
// экспорт без пересканирования
func (r *roomRepository) Create(ctx context.Context, room *domain.SavedRoom) error {
	planJSON, err := json.Marshal(room.Plan)
	if err != nil {
		return fmt.Errorf("marshal floor plan: %w", err)
	}

	query := `
		INSERT INTO saved_rooms (id, name, floor_plan, element_count, object_categories, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	now := time.Now().UTC()
	room.CreatedAt = now
	room.UpdatedAt = now

	_, err = r.db.ExecContext(ctx, query,
		room.ID,
		room.Name,
		planJSON,
		room.ElementCount,
		pq.Array(room.ObjectCategories),
		room.CreatedAt,
		room.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to insert saved room",
			zap.String("room_id", room.ID.String()),
			zap.Error(err))
		return fmt.Errorf("insert saved room: %w", err)
	}

	return nil
}

// GetByID возвращает помещение по идентификатору; nil, если не найдено
func (r *roomRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SavedRoom, error) {
	query := `
		SELECT id, name, floor_plan, element_count, object_categories, created_at, updated_at
		FROM saved_rooms
		WHERE id = $1
	`

	var row savedRoomRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Failed to get saved room",
			zap.String("room_id", id.String()),
			zap.Error(err))
		return nil, fmt.Errorf("get saved room: %w", err)
	}

	return row.toDomain()
}

// List возвращает помещения по фильтру, от новых к старым.
// Фильтр по категориям объектов использует пересечение массивов
// (object_categories && $1)
func (r *roomRepository) List(ctx context.Context, filter repository.RoomFilter) ([]domain.SavedRoom, int, error) {
	where := ""
	args := []interface{}{}

	if len(filter.ObjectCategories) > 0 {
		where = "WHERE object_categories && $1"
		args = append(args, pq.Array(filter.ObjectCategories))
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM saved_rooms %s", where)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count saved rooms: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	query := fmt.Sprintf(`
		SELECT id, name, floor_plan, element_count, object_categories, created_at, updated_at
		FROM saved_rooms
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, limit, filter.Offset)

	var rows []savedRoomRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.logger.Error("Failed to list saved rooms", zap.Error(err))
		return nil, 0, fmt.Errorf("list saved rooms: %w", err)
	}

	rooms := make([]domain.SavedRoom, 0, len(rows))
	for _, row := range rows {
		room, err := row.toDomain()
		if err != nil {
			return nil, 0, err
		}
		rooms = append(rooms, *room)
	}

	return rooms, total, nil
}

// Rename обновляет имя помещения
func (r *roomRepository) Rename(ctx context.Context, id uuid.UUID, name string) (bool, error) {
	query := `UPDATE saved_rooms SET name = $1, updated_at = $2 WHERE id = $3`

	res, err := r.db.ExecContext(ctx, query, name, time.Now().UTC(), id)
	if err != nil {
		r.logger.Error("Failed to rename saved room",
			zap.String("room_id", id.String()),
			zap.Error(err))
		return false, fmt.Errorf("rename saved room: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rename saved room rows affected: %w", err)
	}

	return affected > 0, nil
}

// Delete удаляет помещение
func (r *roomRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM saved_rooms WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete saved room",
			zap.String("room_id", id.String()),
			zap.Error(err))
		return false, fmt.Errorf("delete saved room: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete saved room rows affected: %w", err)
	}

	return affected > 0, nil
}

// GetStatistics возвращает агрегированную статистику по помещениям
func (r *roomRepository) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	stats := &domain.Statistics{
		ObjectsByCategory: make(map[string]int),
		LastUpdated:       time.Now().UTC(),
	}

	summaryQuery := `
		SELECT
			COUNT(*) AS total_rooms,
			COALESCE(SUM(element_count), 0) AS total_elements,
			MAX(created_at) AS last_saved_at
		FROM saved_rooms
	`

	var lastSaved sql.NullTime
	if err := r.db.QueryRowContext(ctx, summaryQuery).Scan(
		&stats.TotalRooms,
		&stats.TotalElements,
		&lastSaved,
	); err != nil {
		r.logger.Error("failed to get room summary stats", zap.Error(err))
		return nil, fmt.Errorf("query room summary stats: %w", err)
	}
	if lastSaved.Valid {
		stats.LastSavedAt = &lastSaved.Time
	}

	categoryQuery := `
		SELECT category, COUNT(*) AS count
		FROM saved_rooms, unnest(object_categories) AS category
		GROUP BY category
	`

	rows, err := r.db.QueryContext(ctx, categoryQuery)
	if err != nil {
		r.logger.Error("failed to get category stats", zap.Error(err))
		return nil, fmt.Errorf("query category stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("scan category stats: %w", err)
		}
		stats.ObjectsByCategory[category] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("category stats rows error: %w", err)
	}

	return stats, nil
}
