package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"devctl/internal/command"
)

// uninstallIgnoreNotFound makes deletion tolerate already-missing resources.
var uninstallIgnoreNotFound bool

// installCmd installs the custom resource definitions into the K8S cluster
// specified in ~/.kube/config.
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the CRDs into the cluster",
	RunE: func(cmd *cobra.Command, args []string) error {
		return command.Pipe(
			[]string{"kustomize", "build", filepath.Join("config", "crd")},
			[]string{"kubectl", "apply", "--filename", "-"},
		)
	},
}

// uninstallCmd removes the custom resource definitions from the K8S cluster
// specified in ~/.kube/config.
var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Uninstall the CRDs from the cluster",
	RunE: func(cmd *cobra.Command, args []string) error {
		return command.Pipe(
			[]string{"kustomize", "build", filepath.Join("config", "crd")},
			[]string{
				"kubectl", "delete",
				fmt.Sprintf("--ignore-not-found=%t", uninstallIgnoreNotFound),
				"--filename", "-",
			},
		)
	},
}

func init() {
	uninstallCmd.Flags().BoolVar(&uninstallIgnoreNotFound, "ignore-not-found", false,
		"Ignore resource not found errors during deletion")

	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
}
