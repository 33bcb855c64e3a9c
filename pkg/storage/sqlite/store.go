package sqlite

import (
	"github.com/bokol-ooch/temporizadores/pkg/storage"
	"github.com/jmoiron/sqlx"

	// Registers the "sqlite3" database/sql driver.
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// DriverName is the database/sql driver used for the SQLite file.
const DriverName = "sqlite3"

// store contains all SQLite based sub-stores for managing the models
type store struct {
	db      *sqlx.DB
	records *recordStore
}

// NewStore creates a new SQLite based Storage interface
func NewStore(db *sqlx.DB) storage.Interface {
	return &store{
		db:      db,
		records: newRecordStore(db),
	}
}

// Open connects to the SQLite file at path, creating it if absent, and
// applies the schema. The handle keeps a single connection, SQLite
// serializes writes on it.
func Open(path string) (*sqlx.DB, error) {
	db, err := sqlx.Open(DriverName, path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite database")
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to connect to sqlite database")
	}

	if _, err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Records returns a sub-store for managing the Record model
func (s *store) Records() storage.RecordStore {
	return s.records
}

// Close releases the database handle
func (s *store) Close() error {
	return s.db.Close()
}
