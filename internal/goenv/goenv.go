// Package goenv answers `go env` queries. Values never change within one
// devctl invocation, so each variable is looked up at most once per process
// and served from an explicit in-memory table afterwards.
package goenv

import (
	"fmt"
	"sync"

	"devctl/internal/command"
)

var (
	mu    sync.Mutex
	cache = map[string]string{}

	// eval is the query hook; tests swap it to avoid spawning the toolchain.
	eval = func(name string) (string, error) {
		return command.Output("go", "env", name)
	}
)

// Var returns the value of the named Go environment variable as reported by
// `go env`. For example, on a Linux host Var("GOOS") returns "linux".
func Var(name string) (string, error) {
	mu.Lock()
	defer mu.Unlock()

	if value, ok := cache[name]; ok {
		return value, nil
	}
	value, err := eval(name)
	if err != nil {
		return "", fmt.Errorf("failed to get Go environment variable %q: %w", name, err)
	}
	cache[name] = value
	return value, nil
}
