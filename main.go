package main

import (
	"devctl/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// The devctl project is a developer-experience wrapper around the external tools used to
// build, package, and deploy the operator:
//   - Builds the operator binary, container image, and bundle image (go, podman)
//   - Generates mocks, manifests, deep-copy code, and the operator bundle
//     (go generate, controller-gen, operator-sdk, kustomize)
//   - Deploys/undeploys the operator and installs/uninstalls its CRDs on the cluster
//     selected by ~/.kube/config (kustomize, kubectl)
//   - Pushes images to the registry (podman)
//   - Installs every required development tool with `devctl setup`, either through
//     `go install` or by downloading a versioned release artifact, verifying it, and
//     placing it into a bin directory that is already on the PATH
//
// Error handling strategy:
//   - External tools inherit stdout/stderr, so their own diagnostics are always visible
//   - Any failure aborts the invocation immediately; the process exits with the failing
//     external command's exit status
func main() {
	cmd.Execute()
}
