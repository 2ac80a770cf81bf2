package installer

import (
	"errors"
	"fmt"
	"os/exec"
	"reflect"
	"testing"

	"devctl/internal/command"
)

// stubLookPath replaces the PATH probe for the duration of the test.
func stubLookPath(t *testing.T, fn func(name string) (string, error)) {
	t.Helper()
	old := lookPath
	lookPath = fn
	t.Cleanup(func() { lookPath = old })
}

func TestBinaryName(t *testing.T) {
	cases := []struct {
		pkg  string
		want string
	}{
		{"github.com/onsi/ginkgo/v2/ginkgo", "ginkgo"},
		{"sigs.k8s.io/controller-tools/cmd/controller-gen", "controller-gen"},
		{"sigs.k8s.io/kustomize/kustomize/v5", "kustomize"},
		{"go.uber.org/mock/mockgen", "mockgen"},
	}
	for _, c := range cases {
		if got := binaryName(c.pkg); got != c.want {
			t.Errorf("binaryName(%q): got %q, want %q", c.pkg, got, c.want)
		}
	}
}

func TestModuleVersionProbesMostSpecificFirst(t *testing.T) {
	var probed []string
	restore := command.SetRunner(func(c *exec.Cmd) error {
		probed = append(probed, c.Args[len(c.Args)-1])
		if c.Args[len(c.Args)-1] == "github.com/onsi/ginkgo/v2" {
			fmt.Fprint(c.Stdout, "v2.19.0\n")
			return nil
		}
		return errors.New("not a module")
	})
	defer restore()

	version, err := moduleVersion("github.com/onsi/ginkgo/v2/ginkgo")
	if err != nil {
		t.Fatalf("moduleVersion: %v", err)
	}
	if version != "v2.19.0" {
		t.Errorf("version: got %q", version)
	}

	// Full path minus the binary segment first, then shorter; stops at the
	// first success.
	want := []string{
		"github.com/onsi/ginkgo/v2",
	}
	if !reflect.DeepEqual(probed, want) {
		t.Errorf("probed: got %v, want %v", probed, want)
	}
}

func TestModuleVersionWalksDownToThreeSegments(t *testing.T) {
	var probed []string
	restore := command.SetRunner(func(c *exec.Cmd) error {
		probed = append(probed, c.Args[len(c.Args)-1])
		return errors.New("not a module")
	})
	defer restore()

	_, err := moduleVersion("github.com/operator-framework/operator-sdk/cmd/operator-sdk")
	if err == nil {
		t.Fatal("expected exhaustion error")
	}

	want := []string{
		"github.com/operator-framework/operator-sdk/cmd",
		"github.com/operator-framework/operator-sdk",
	}
	if !reflect.DeepEqual(probed, want) {
		t.Errorf("probed: got %v, want %v", probed, want)
	}
}

func TestGoInstallSkipsInstalledTool(t *testing.T) {
	stubLookPath(t, func(name string) (string, error) {
		return "/usr/local/bin/" + name, nil
	})
	restore := command.SetRunner(func(c *exec.Cmd) error {
		t.Errorf("unexpected command: %v", c.Args)
		return nil
	})
	defer restore()

	if err := goInstall("github.com/onsi/ginkgo/v2/ginkgo", ""); err != nil {
		t.Fatalf("goInstall: %v", err)
	}
}

func TestGoInstallExplicitVersionSkipsLookup(t *testing.T) {
	stubLookPath(t, func(name string) (string, error) {
		return "", exec.ErrNotFound
	})

	var calls [][]string
	restore := command.SetRunner(func(c *exec.Cmd) error {
		calls = append(calls, c.Args)
		return nil
	})
	defer restore()

	if err := goInstall("go.uber.org/mock/mockgen", "v0.4.0"); err != nil {
		t.Fatalf("goInstall: %v", err)
	}

	want := [][]string{{"go", "install", "go.uber.org/mock/mockgen@v0.4.0"}}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("calls: got %v, want %v", calls, want)
	}
}

func TestGoInstallResolvedVersion(t *testing.T) {
	stubLookPath(t, func(name string) (string, error) {
		return "", exec.ErrNotFound
	})

	var calls [][]string
	restore := command.SetRunner(func(c *exec.Cmd) error {
		calls = append(calls, c.Args)
		if c.Args[0] == "go" && c.Args[1] == "list" {
			fmt.Fprint(c.Stdout, "v2.19.0\n")
		}
		return nil
	})
	defer restore()

	if err := goInstall("github.com/onsi/ginkgo/v2/ginkgo", ""); err != nil {
		t.Fatalf("goInstall: %v", err)
	}

	last := calls[len(calls)-1]
	want := []string{"go", "install", "github.com/onsi/ginkgo/v2/ginkgo@v2.19.0"}
	if !reflect.DeepEqual(last, want) {
		t.Errorf("install command: got %v, want %v", last, want)
	}
}
