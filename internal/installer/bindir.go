package installer

import (
	"errors"
	"os"
	"path/filepath"

	"devctl/internal/goenv"
)

// SelectBinDir picks the directory that newly installed binaries go into. The
// candidates are tried in fixed priority order and the first one that is
// already a member of the PATH wins, so an installed tool is immediately
// resolvable without the user editing their environment:
//
//  1. <project parent>/.local/bin
//  2. <project>/bin
//  3. $(go env GOBIN)
//  4. $(go env GOROOT)/bin
func SelectBinDir() (string, error) {
	candidates, err := candidateDirs()
	if err != nil {
		return "", err
	}
	return selectBinDir(os.Getenv("PATH"), candidates)
}

// candidateDirs builds the ordered candidate list for the current project and
// Go installation.
func candidateDirs() ([]string, error) {
	project, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	candidates := []string{
		filepath.Join(filepath.Dir(project), ".local", "bin"),
		filepath.Join(project, "bin"),
	}

	gobin, err := goenv.Var("GOBIN")
	if err != nil {
		return nil, err
	}
	if gobin != "" {
		candidates = append(candidates, gobin)
	}

	goroot, err := goenv.Var("GOROOT")
	if err != nil {
		return nil, err
	}
	if goroot != "" {
		candidates = append(candidates, filepath.Join(goroot, "bin"))
	}

	return candidates, nil
}

// selectBinDir returns the first candidate that appears in the given PATH
// value. Entries are compared after filepath.Clean so trailing separators
// don't defeat the match.
func selectBinDir(pathEnv string, candidates []string) (string, error) {
	members := map[string]bool{}
	for _, dir := range filepath.SplitList(pathEnv) {
		if dir != "" {
			members[filepath.Clean(dir)] = true
		}
	}

	for _, candidate := range candidates {
		if members[filepath.Clean(candidate)] {
			return candidate, nil
		}
	}

	return "", errors.New("failed to select a suitable binaries directory")
}
