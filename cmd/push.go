package cmd

import (
	"github.com/spf13/cobra"

	"devctl/internal/command"
)

// Image flags for `push image`.
var (
	pushImageRepository string
	pushImageTag        string
)

// Image flags for `push bundle-image`.
var (
	pushBundleRepository string
	pushBundleTag        string
)

// pushCmd groups the push actions. Invoked without a subcommand it pushes the
// container image, accepting the same flags as `push image`.
var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push build artifacts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return command.Run("podman", "push", pushImageRepository+":"+pushImageTag)
	},
}

// pushImageCmd pushes the container image to the image registry.
var pushImageCmd = &cobra.Command{
	Use:   "image",
	Short: "Push the container image",
	RunE: func(cmd *cobra.Command, args []string) error {
		return command.Run("podman", "push", pushImageRepository+":"+pushImageTag)
	},
}

// pushBundleImageCmd pushes the bundle image to the image registry.
var pushBundleImageCmd = &cobra.Command{
	Use:   "bundle-image",
	Short: "Push the bundle image",
	RunE: func(cmd *cobra.Command, args []string) error {
		return command.Run("podman", "push", pushBundleRepository+":"+pushBundleTag)
	},
}

func init() {
	// The bare `push` form runs the image push, so it takes the image flags too.
	pushCmd.Flags().StringVar(&pushImageRepository, "repository", cfg.Image.Repository, "Image repository")
	pushCmd.Flags().StringVar(&pushImageTag, "tag", cfg.Image.Tag, "Image tag")

	pushImageCmd.Flags().StringVar(&pushImageRepository, "repository", cfg.Image.Repository, "Image repository")
	pushImageCmd.Flags().StringVar(&pushImageTag, "tag", cfg.Image.Tag, "Image tag")

	pushBundleImageCmd.Flags().StringVar(&pushBundleRepository, "repository", cfg.Bundle.Repository, "Image repository")
	pushBundleImageCmd.Flags().StringVar(&pushBundleTag, "tag", cfg.Bundle.Tag, "Image tag")

	pushCmd.AddCommand(pushImageCmd)
	pushCmd.AddCommand(pushBundleImageCmd)
	rootCmd.AddCommand(pushCmd)
}
