package cmd

import (
	"github.com/bokol-ooch/temporizadores/pkg/cmd/server"
	"github.com/spf13/cobra"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the records API and the front end",
	Run:   server.RunServe(c),
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
