package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/floorplan-microservice/internal/domain/repository"
	"github.com/floorplan-microservice/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewRoomRepositoryForTest creates a room repository with test database and logger
func NewRoomRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.RoomRepository {
	pgDB := NewDBForTest(db, logger)
	return postgres.NewRoomRepository(pgDB, logger)
}
