package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"devctl/internal/command"
)

// deployImage is the image reference the deployed controller runs.
var deployImage string

// undeployIgnoreNotFound makes deletion tolerate already-missing resources.
var undeployIgnoreNotFound bool

// deployCmd deploys the controller to the K8S cluster specified in
// ~/.kube/config.
var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Deploy the controller to the cluster",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := command.RunIn(
			filepath.Join("config", "manager"),
			"kustomize", "edit", "set", "image", "controller="+deployImage,
		); err != nil {
			return err
		}
		return command.Pipe(
			[]string{"kustomize", "build", filepath.Join("config", "default")},
			[]string{"kubectl", "apply", "--filename", "-"},
		)
	},
}

// undeployCmd removes the controller from the K8S cluster specified in
// ~/.kube/config.
var undeployCmd = &cobra.Command{
	Use:   "undeploy",
	Short: "Undeploy the controller from the cluster",
	RunE: func(cmd *cobra.Command, args []string) error {
		return command.Pipe(
			[]string{"kustomize", "build", filepath.Join("config", "default")},
			[]string{
				"kubectl", "delete",
				fmt.Sprintf("--ignore-not-found=%t", undeployIgnoreNotFound),
				"--filename", "-",
			},
		)
	},
}

func init() {
	deployCmd.Flags().StringVar(&deployImage, "image", cfg.Image.String(), "Image reference")
	undeployCmd.Flags().BoolVar(&undeployIgnoreNotFound, "ignore-not-found", false,
		"Ignore resource not found errors during deletion")

	rootCmd.AddCommand(deployCmd)
	rootCmd.AddCommand(undeployCmd)
}
