package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"devctl/internal/command"
)

// generateBundleImage is the image reference baked into the generated bundle.
var generateBundleImage string

// generateCmd groups the code generation actions. Invoked without a subcommand
// it runs all of them in a fixed order: mocks, manifests, deep-copy, bundle.
// The first failure aborts the sequence.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate code",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runGenerateMocks(); err != nil {
			return err
		}
		if err := runGenerateManifests(); err != nil {
			return err
		}
		if err := runGenerateDeepCopy(); err != nil {
			return err
		}
		return runGenerateBundle(generateBundleImage)
	},
}

// generateMocksCmd generates mocks.
var generateMocksCmd = &cobra.Command{
	Use:   "mocks",
	Short: "Generate mocks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerateMocks()
	},
}

// generateManifestsCmd generates the webhook configuration, cluster role and
// custom resource definitions.
var generateManifestsCmd = &cobra.Command{
	Use:   "manifests",
	Short: "Generate webhook configuration, cluster role and CRDs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerateManifests()
	},
}

// generateDeepCopyCmd generates deep copy code.
var generateDeepCopyCmd = &cobra.Command{
	Use:   "deep-copy",
	Short: "Generate deep copy code",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerateDeepCopy()
	},
}

// generateBundleCmd generates the operator bundle.
var generateBundleCmd = &cobra.Command{
	Use:   "bundle",
	Short: "Generate the operator bundle",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerateBundle(generateBundleImage)
	},
}

func runGenerateMocks() error {
	return command.Run("go", "generate", "./...")
}

func runGenerateManifests() error {
	return command.Run(
		"controller-gen",
		"rbac:roleName=manager-role",
		"crd",
		"webhook",
		"paths=./...",
		"output:crd:artifacts:config="+filepath.Join("config", "crd", "bases"),
	)
}

func runGenerateDeepCopy() error {
	return command.Run(
		"controller-gen",
		"object:headerFile="+filepath.Join("hack", "boilerplate.go.txt"),
		"paths=./...",
	)
}

// runGenerateBundle generates the kustomize manifests, points them at the
// given image, renders the bundle, and validates the result.
func runGenerateBundle(image string) error {
	if err := command.Run(
		"operator-sdk", "generate", "kustomize", "manifests",
		"--quiet",
		"--apis-dir", "api",
	); err != nil {
		return err
	}

	if err := command.RunIn(
		filepath.Join("config", "manager"),
		"kustomize", "edit", "set", "image", "controller="+image,
	); err != nil {
		return err
	}

	if err := command.Run("kustomize", "build", filepath.Join("config", "manifests")); err != nil {
		return err
	}

	return command.Run("operator-sdk", "bundle", "validate", filepath.Join(".", "bundle"))
}

func init() {
	generateCmd.PersistentFlags().StringVar(&generateBundleImage, "image", cfg.Image.String(), "Image reference")

	generateCmd.AddCommand(generateMocksCmd)
	generateCmd.AddCommand(generateManifestsCmd)
	generateCmd.AddCommand(generateDeepCopyCmd)
	generateCmd.AddCommand(generateBundleCmd)
	rootCmd.AddCommand(generateCmd)
}
