package cmd

import (
	"github.com/spf13/cobra"

	"devctl/internal/command"
)

// Image flags for `build image`.
var (
	buildImageRepository string
	buildImageTag        string
)

// Image flags for `build bundle-image`.
var (
	buildBundleRepository string
	buildBundleTag        string
)

// buildCmd groups the build actions. Invoked without a subcommand it builds
// the binary.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build binaries, images and catalogs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuildBinary()
	},
}

// buildBinaryCmd builds the operator binary.
var buildBinaryCmd = &cobra.Command{
	Use:   "binary",
	Short: "Build the binary",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuildBinary()
	},
}

// buildImageCmd builds the container image.
var buildImageCmd = &cobra.Command{
	Use:   "image",
	Short: "Build the container image",
	RunE: func(cmd *cobra.Command, args []string) error {
		return command.Run(
			"podman", "build",
			"--tag", buildImageRepository+":"+buildImageTag,
			"--file", "Containerfile",
		)
	},
}

// buildBundleImageCmd builds the operator bundle image.
var buildBundleImageCmd = &cobra.Command{
	Use:   "bundle-image",
	Short: "Build the bundle image",
	RunE: func(cmd *cobra.Command, args []string) error {
		return command.Run(
			"podman", "build",
			"--file", "bundle.Dockerfile",
			"--tag", buildBundleRepository+":"+buildBundleTag,
			".",
		)
	},
}

func runBuildBinary() error {
	return command.Run("go", "build")
}

func init() {
	buildImageCmd.Flags().StringVar(&buildImageRepository, "repository", cfg.Image.Repository, "Image repository")
	buildImageCmd.Flags().StringVar(&buildImageTag, "tag", cfg.Image.Tag, "Image tag")

	buildBundleImageCmd.Flags().StringVar(&buildBundleRepository, "repository", cfg.Bundle.Repository, "Image repository")
	buildBundleImageCmd.Flags().StringVar(&buildBundleTag, "tag", cfg.Bundle.Tag, "Image tag")

	buildCmd.AddCommand(buildBinaryCmd)
	buildCmd.AddCommand(buildImageCmd)
	buildCmd.AddCommand(buildBundleImageCmd)
	rootCmd.AddCommand(buildCmd)
}
