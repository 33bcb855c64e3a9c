package cli

import (
	"fmt"
	"os"

	"github.com/bokol-ooch/temporizadores/config"
	"github.com/bokol-ooch/temporizadores/pkg/storage/sqlite"
	"github.com/jmoiron/sqlx"
	colorable "github.com/mattn/go-colorable"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type MigrateHandler struct {
	c *config.Config
}

func newMigrateHandler(c *config.Config) *MigrateHandler {
	return &MigrateHandler{c: c}
}

// getDatabasePath returns the positional argument, falling back to the
// configured database.
func (h *MigrateHandler) getDatabasePath(cmd *cobra.Command, args []string, position int) (path string) {
	if len(args) > position {
		path = args[position]
	} else if h.c != nil && !h.c.UseMemoryStore() {
		path = h.c.DatabaseURL
	}

	if path == "" {
		fmt.Println(cmd.UsageString())
	}
	return
}

func (h *MigrateHandler) MigrateSQL(cmd *cobra.Command, args []string) {
	path := h.getDatabasePath(cmd, args, 0)
	if path == "" {
		os.Exit(2) // Return missing keyword or command
	}

	log.SetLevel(log.DebugLevel)
	log.SetFormatter(&log.TextFormatter{
		ForceColors: true,
	})
	log.SetOutput(colorable.NewColorableStdout())

	n, err := h.migrate(path)
	if err != nil {
		log.Errorf("An error occurred while running the migrations: %s", err)
		os.Exit(1)
	}
	log.Infof("Migration successful! Applied a total of %d migrations.", n)
}

func (h *MigrateHandler) migrate(path string) (int, error) {
	log.WithField("path", path).Info("Applying SQL migration...")

	// Connect to the SQLite file, it is created when absent
	db, err := sqlx.Open(sqlite.DriverName, path)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	// Check the database connection
	if err := db.Ping(); err != nil {
		return 0, err
	}

	return sqlite.Migrate(db)
}
