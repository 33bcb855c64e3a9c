package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd prints the build information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Version:    %s\n", c.BuildVersion)
		fmt.Printf("Git hash:   %s\n", c.BuildHash)
		fmt.Printf("Build time: %s\n", c.BuildTime)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
