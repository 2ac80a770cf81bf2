package cmd

import (
	"github.com/spf13/cobra"

	"devctl/internal/installer"
)

// setupCmd prepares the development environment by installing every tool the
// other commands invoke. Tools already present on the PATH are left untouched.
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Prepare the development environment",
	RunE: func(cmd *cobra.Command, args []string) error {
		return installer.Setup()
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
