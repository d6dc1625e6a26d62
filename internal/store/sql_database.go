package store

import (
	"database/sql"

	"github.com/MKhiriev/share-favorites/internal/logger"
	"github.com/MKhiriev/share-favorites/migrations"
)

// DB is the registry database handle shared by the SQL repositories.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded registry schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
