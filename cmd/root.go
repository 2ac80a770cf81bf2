package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"devctl/internal/command"
	"devctl/internal/config"
	"devctl/internal/logger"
)

// debug indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// cfg holds the project settings (image names, tags) read from the optional
// devctl.yaml file, falling back to compiled-in defaults. It is loaded once,
// before flag registration, because several flags default to its values.
var cfg = config.Load("devctl.yaml")

// rootCmd is the base command for the devctl CLI.
var rootCmd = &cobra.Command{
	Use:   "devctl",
	Short: "Development tasks for the operator project",

	// Errors surface once through Execute with the external command's own
	// output already on the terminal; cobra's extra reporting is disabled.
	SilenceUsage:  true,
	SilenceErrors: true,

	// PersistentPreRun is a hook that runs before any subcommand.
	// Here, we initialize the logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},
}

// Execute parses the command line and runs the selected subcommand. On failure
// it logs a single error line and exits with the failing external command's
// exit status.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		logger.Error("[ERROR] %v\n", err)
		os.Exit(command.ExitCode(err))
	}
}
