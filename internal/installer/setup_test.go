package installer

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"devctl/internal/command"
)

func TestCheckGoMissingToolchainIsFatal(t *testing.T) {
	stubLookPath(t, func(name string) (string, error) {
		return "", exec.ErrNotFound
	})

	if err := checkGo(); err == nil {
		t.Fatal("expected error when go is absent")
	}
}

func TestSetupAllToolsPresentIsANoOp(t *testing.T) {
	// Every tool resolves on the PATH, so setup must finish without spawning a
	// single process or touching the filesystem.
	stubLookPath(t, func(name string) (string, error) {
		return "/usr/local/bin/" + name, nil
	})
	restore := command.SetRunner(func(c *exec.Cmd) error {
		t.Errorf("unexpected command: %v", c.Args)
		return nil
	})
	defer restore()

	if err := Setup(); err != nil {
		t.Fatalf("Setup: %v", err)
	}
}

// stubGoEnv answers `go env` queries through the command runner and rejects
// any other command.
func stubGoEnv(t *testing.T, values map[string]string) func() {
	t.Helper()
	return command.SetRunner(func(c *exec.Cmd) error {
		if len(c.Args) == 3 && c.Args[0] == "go" && c.Args[1] == "env" {
			fmt.Fprintln(c.Stdout, values[c.Args[2]])
			return nil
		}
		t.Errorf("unexpected command: %v", c.Args)
		return nil
	})
}

func TestInstallSpectralSubstitutesX64Architecture(t *testing.T) {
	var requested []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = append(requested, r.URL.Path)
		w.Write([]byte("spectral binary"))
	}))
	t.Cleanup(srv.Close)

	oldBase := releaseBase
	releaseBase = srv.URL
	t.Cleanup(func() { releaseBase = oldBase })

	// The binaries directory is selected through GOBIN and must be on the PATH.
	binDir := t.TempDir()
	t.Setenv("PATH", binDir)
	stubLookPath(t, func(name string) (string, error) {
		return "", exec.ErrNotFound
	})
	restore := stubGoEnv(t, map[string]string{
		"GOOS":   "linux",
		"GOARCH": "amd64",
		"GOBIN":  binDir,
		"GOROOT": "",
	})
	defer restore()

	if err := installSpectral(); err != nil {
		t.Fatalf("installSpectral: %v", err)
	}

	// Spectral releases name the amd64 architecture "x64".
	wantPath := "/stoplightio/spectral/releases/download/v" + spectralVersion + "/spectral-linux-x64"
	if len(requested) != 1 || requested[0] != wantPath {
		t.Errorf("requested: got %v, want [%s]", requested, wantPath)
	}

	info, err := os.Stat(filepath.Join(binDir, "spectral"))
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode()&0o111 == 0 {
		t.Errorf("execute bit not set: %v", info.Mode())
	}
}

func TestSetupStopsWhenGoIsMissing(t *testing.T) {
	stubLookPath(t, func(name string) (string, error) {
		return "", exec.ErrNotFound
	})
	restore := command.SetRunner(func(c *exec.Cmd) error {
		t.Errorf("unexpected command: %v", c.Args)
		return nil
	})
	defer restore()

	if err := Setup(); err == nil {
		t.Fatal("expected error when go is absent")
	}
}
