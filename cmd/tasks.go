package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"devctl/internal/command"
	"devctl/internal/config"
)

// testCmd runs the test suites. Extra arguments for the runner come from the
// DEVCTL_TEST_FLAGS environment variable, falling back to the test flags in
// devctl.yaml; either value is split on whitespace.
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Run the tests",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTests()
	},
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove build artifacts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return command.Run("go", "clean")
	},
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Run the linter",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLint()
	},
}

var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Format the source code",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFmt()
	},
}

var vetCmd = &cobra.Command{
	Use:   "vet",
	Short: "Run go vet",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVet()
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the controller locally",
	RunE: func(cmd *cobra.Command, args []string) error {
		return command.Run("go", "run", ".")
	},
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the project dependencies",
	RunE: func(cmd *cobra.Command, args []string) error {
		return command.Run("go", "get", "-u", "./...")
	},
}

// ciJobCmd runs the checks the CI pipeline runs, in the same order, aborting
// at the first failure.
var ciJobCmd = &cobra.Command{
	Use:   "ci-job",
	Short: "Run the CI checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runFmt(); err != nil {
			return err
		}
		if err := runVet(); err != nil {
			return err
		}
		if err := runLint(); err != nil {
			return err
		}
		return runTests()
	},
}

func runTests() error {
	flags := os.Getenv(config.TestFlagsVar)
	if flags == "" {
		flags = cfg.Test.Flags
	}
	args := []string{"ginkgo", "run", "-r"}
	args = append(args, strings.Fields(flags)...)
	return command.Run(args...)
}

func runLint() error {
	return command.Run("golangci-lint", "run")
}

func runFmt() error {
	return command.Run("go", "fmt", "./...")
}

func runVet() error {
	return command.Run("go", "vet", "./...")
}

func init() {
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(vetCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(ciJobCmd)
}
