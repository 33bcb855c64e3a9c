package sqlite

import (
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	migrate "github.com/rubenv/sql-migrate"
)

// The table definition matches files written by earlier versions of the
// service, so an existing registros.sqlite is picked up unchanged.
const createRecordsTable = `CREATE TABLE IF NOT EXISTS registros (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	nombre TEXT,
	estante TEXT,
	hora_inicio TEXT,
	hora_fin TEXT,
	tiempo_transcurrido INTEGER
)`

// Migrations holds the schema of the records store
var Migrations = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id:   "0001_registros",
			Up:   []string{createRecordsTable},
			Down: []string{"DROP TABLE IF EXISTS registros"},
		},
	},
}

// Migrate applies the pending schema migrations and returns how many ran.
// It is safe to call on every start.
func Migrate(db *sqlx.DB) (int, error) {
	n, err := migrate.Exec(db.DB, "sqlite3", Migrations, migrate.Up)
	if err != nil {
		return 0, errors.Wrap(err, "failed to apply sqlite schema")
	}
	return n, nil
}
