package installer

import (
	"errors"
	"fmt"

	"devctl/internal/goenv"
	"devctl/internal/logger"
)

// releaseBase is the host release artifacts are downloaded from. Tests point
// it at a local server.
var releaseBase = "https://github.com"

// Setup prepares the development environment by installing every tool the
// other devctl commands invoke. Installation is sequential and stops at the
// first failure.
func Setup() error {
	// The Go toolchain is a hard prerequisite: everything else is installed
	// through it or resolved against its environment.
	if err := checkGo(); err != nil {
		return err
	}

	steps := []func() error{
		installControllerGen,
		installGinkgo,
		installGolangciLint,
		installKustomize,
		installMockgen,
		installOperatorSDK,
		installOPM,
		installSetupEnvtest,
		installSpectral,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// checkGo verifies that the Go toolchain is present. Unlike the other tools it
// is never installed automatically: picking an installation directory for a
// whole toolchain is out of scope, so its absence is fatal.
func checkGo() error {
	location, err := lookPath("go")
	if err != nil {
		return errors.New("the 'go' tool isn't available")
	}
	logger.Info("[INFO] The 'go' tool is already installed at '%s'\n", location)
	return nil
}

func installControllerGen() error {
	return goInstall("sigs.k8s.io/controller-tools/cmd/controller-gen", "v"+controllerGenVersion)
}

// installGinkgo resolves the ginkgo version from go.mod, since the project
// depends on it for its test suites.
func installGinkgo() error {
	return goInstall("github.com/onsi/ginkgo/v2/ginkgo", "")
}

func installKustomize() error {
	return goInstall("sigs.k8s.io/kustomize/kustomize/v5", "v"+kustomizeVersion)
}

func installMockgen() error {
	return goInstall("go.uber.org/mock/mockgen", "v"+mockgenVersion)
}

func installSetupEnvtest() error {
	return goInstall("sigs.k8s.io/controller-runtime/tools/setup-envtest", "latest")
}

// installGolangciLint installs golangci-lint from its GitHub release tarball.
// Its developers advise against `go install` (the resulting binary may be
// built with mismatched dependency versions), so the prebuilt artifact is
// downloaded, checksum-verified, and extracted instead.
func installGolangciLint() error {
	const name = "golangci-lint"
	if location, err := lookPath(name); err == nil {
		logger.Info("[INFO] Tool '%s' is already installed at '%s'\n", name, location)
		return nil
	}

	binDir, err := SelectBinDir()
	if err != nil {
		return err
	}
	platform, architecture, err := hostPlatform()
	if err != nil {
		return err
	}

	url := fmt.Sprintf(
		"%[1]s/golangci/golangci-lint/releases/download/v%[2]s/golangci-lint-%[2]s-%[3]s-%[4]s.tar.gz",
		releaseBase, golangciLintVersion, platform, architecture,
	)
	member := fmt.Sprintf("golangci-lint-%s-%s-%s/golangci-lint", golangciLintVersion, platform, architecture)
	return installArchive(name, url, golangciLintDigest, member, binDir)
}

// installOperatorSDK installs the operator-sdk release binary.
func installOperatorSDK() error {
	const name = "operator-sdk"
	if location, err := lookPath(name); err == nil {
		logger.Info("[INFO] Tool '%s' is already installed at '%s'\n", name, location)
		return nil
	}

	binDir, err := SelectBinDir()
	if err != nil {
		return err
	}
	platform, architecture, err := hostPlatform()
	if err != nil {
		return err
	}

	url := fmt.Sprintf(
		"%s/operator-framework/operator-sdk/releases/download/v%s/operator-sdk_%s_%s",
		releaseBase, operatorSDKVersion, platform, architecture,
	)
	return installBinary(name, url, "", binDir)
}

// installOPM installs the opm release binary.
func installOPM() error {
	const name = "opm"
	if location, err := lookPath(name); err == nil {
		logger.Info("[INFO] Tool '%s' is already installed at '%s'\n", name, location)
		return nil
	}

	binDir, err := SelectBinDir()
	if err != nil {
		return err
	}
	platform, architecture, err := hostPlatform()
	if err != nil {
		return err
	}

	url := fmt.Sprintf(
		"%s/operator-framework/operator-registry/releases/download/v%s/%s-%s-opm",
		releaseBase, opmVersion, platform, architecture,
	)
	return installBinary(name, url, "", binDir)
}

// installSpectral installs the spectral release binary. Spectral releases name
// the amd64 architecture "x64".
func installSpectral() error {
	const name = "spectral"
	if location, err := lookPath(name); err == nil {
		logger.Info("[INFO] Tool '%s' is already installed at '%s'\n", name, location)
		return nil
	}

	binDir, err := SelectBinDir()
	if err != nil {
		return err
	}
	platform, architecture, err := hostPlatform()
	if err != nil {
		return err
	}
	if architecture == "amd64" {
		architecture = "x64"
	}

	url := fmt.Sprintf(
		"%s/stoplightio/spectral/releases/download/v%s/spectral-%s-%s",
		releaseBase, spectralVersion, platform, architecture,
	)
	return installBinary(name, url, "", binDir)
}

// hostPlatform reports the OS and architecture identifiers used in release
// artifact names, as seen by the Go toolchain.
func hostPlatform() (platform, architecture string, err error) {
	platform, err = goenv.Var("GOOS")
	if err != nil {
		return "", "", err
	}
	architecture, err = goenv.Var("GOARCH")
	if err != nil {
		return "", "", err
	}
	return platform, architecture, nil
}
