package installer

import (
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"devctl/internal/command"
	"devctl/internal/logger"
)

// lookPath probes the active PATH for a binary. Swapped in tests.
var lookPath = exec.LookPath

// versionSegment matches module path segments like "v5" that name a major
// version rather than a binary.
var versionSegment = regexp.MustCompile(`^v\d+$`)

// binaryName derives the name of the installed binary from the full package
// path of a tool. That is usually the last segment, but when the last segment
// is a major version marker the binary takes its name from the segment before
// it: "sigs.k8s.io/kustomize/kustomize/v5" installs "kustomize".
func binaryName(pkg string) string {
	segments := strings.Split(pkg, "/")
	name := segments[len(segments)-1]
	if versionSegment.MatchString(name) && len(segments) > 1 {
		name = segments[len(segments)-2]
	}
	return name
}

// moduleVersion resolves the version of a tool from the project's dependency
// manifest. The package path is probed from most specific to least specific,
// because the boundary between module path and package path within the module
// isn't known up front: for "github.com/onsi/ginkgo/v2/ginkgo" the module is
// "github.com/onsi/ginkgo/v2", one segment short of the full path. The first
// prefix that `go list` resolves wins. Prefixes shorter than three segments
// are never probed.
func moduleVersion(pkg string) (string, error) {
	segments := strings.Split(pkg, "/")
	for i := len(segments) - 1; i > 2; i-- {
		prefix := strings.Join(segments[:i], "/")
		version, err := command.Output("go", "list", "-f", "{{.Version}}", "-m", prefix)
		if err == nil {
			return version, nil
		}
	}
	return "", fmt.Errorf("failed to find version for tool '%s'", pkg)
}

// goInstall installs a tool with `go install`.
//
// The pkg parameter is the complete Go path of the binary, for example
// "github.com/onsi/ginkgo/v2/ginkgo" for the ginkgo tool.
//
// The version is required when the tool isn't a dependency of the project.
// The mockgen command, for example, usually isn't, because the mock code it
// generates doesn't depend on the generator itself; in those cases the version
// can't be extracted from go.mod and must be given explicitly. An empty
// version triggers the go.mod lookup.
func goInstall(pkg, version string) error {
	// If the binary is already reachable there is nothing to do. No version
	// check is performed on an already-present binary.
	name := binaryName(pkg)
	if location, err := lookPath(name); err == nil {
		logger.Info("[INFO] Tool '%s' is already installed at '%s'\n", name, location)
		return nil
	}

	if version == "" {
		resolved, err := moduleVersion(pkg)
		if err != nil {
			return err
		}
		version = resolved
		logger.Info("[INFO] Version of tool '%s' is '%s'\n", pkg, version)
	}

	return command.Run("go", "install", fmt.Sprintf("%s@%s", pkg, version))
}
