package cmd

import (
	"github.com/spf13/cobra"
)

// migrateSQLCmd represents the migrate sql command
var migrateSQLCmd = &cobra.Command{
	Use:   "sql [database-path]",
	Short: "Create the SQLite schema of the records store",
	Args:  cobra.MaximumNArgs(1),
	Run:   cmdHandler.Migration.MigrateSQL,
}

func init() {
	migrateCmd.AddCommand(migrateSQLCmd)
}
