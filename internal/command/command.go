// Package command wraps the spawning of the external tools that devctl
// orchestrates. Every invocation is synchronous and inherits the caller's
// environment; there is no retry, timeout, or concurrency.
package command

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"strings"

	"devctl/internal/logger"
)

// runner executes a prepared command. Tests replace it through SetRunner to
// record the exact command lines without spawning processes.
var runner = func(c *exec.Cmd) error { return c.Run() }

// SetRunner swaps the process runner and returns a function that restores the
// previous one.
func SetRunner(fn func(*exec.Cmd) error) func() {
	old := runner
	runner = fn
	return func() { runner = old }
}

// Run executes the given command line with stdin, stdout, and stderr inherited
// from the devctl process, so the tool's own output and prompts reach the user
// unchanged. The returned error carries the tool's exit status.
func Run(args ...string) error {
	return RunIn("", args...)
}

// RunIn is Run with an explicit working directory. An empty dir means the
// current directory.
func RunIn(dir string, args ...string) error {
	c := exec.Command(args[0], args[1:]...)
	c.Dir = dir
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(args, " "))
	return runner(c)
}

// Output executes the given command line and returns its captured standard
// output with surrounding whitespace trimmed. Standard error is discarded:
// callers use Output for probing queries (go env, go list) where a failure is
// an expected answer rather than something to report.
func Output(args ...string) (string, error) {
	c := exec.Command(args[0], args[1:]...)
	var out bytes.Buffer
	c.Stdout = &out
	logger.Debug("[DEBUG] Evaluating command: %s\n", strings.Join(args, " "))
	if err := runner(c); err != nil {
		return "", err
	}
	return strings.TrimSpace(out.String()), nil
}

// Pipe runs the producer command, buffers its standard output, and feeds it to
// the consumer command's standard input. It aborts without starting the
// consumer if the producer fails, so a broken kustomize build never reaches
// kubectl.
func Pipe(producer, consumer []string) error {
	var buf bytes.Buffer

	p := exec.Command(producer[0], producer[1:]...)
	p.Stdout = &buf
	p.Stderr = os.Stderr
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(producer, " "))
	if err := runner(p); err != nil {
		return err
	}

	c := exec.Command(consumer[0], consumer[1:]...)
	c.Stdin = &buf
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(consumer, " "))
	return runner(c)
}

// ExitCode extracts the exit status of a failed external command. It returns 1
// for errors that did not come from a process exit, and 0 for a nil error.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
