// Package execx runs the external CLIs this tool orchestrates.
package execx

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// Runner abstracts external command execution so workflows can be
// exercised without the vendor CLIs installed.
type Runner interface {
	// Run executes a command, streaming its output to the process
	// standard streams.
	Run(ctx context.Context, name string, args ...string) error

	// Output executes a command and returns its captured standard output.
	Output(ctx context.Context, name string, args ...string) (string, error)
}

// Exec is the Runner backed by os/exec.
type Exec struct{}

// NewExec returns a Runner that executes commands on the host.
func NewExec() *Exec {
	return &Exec{}
}

// Available reports whether a binary can be found on PATH.
func Available(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

func (e *Exec) Run(ctx context.Context, name string, args ...string) error {
	log.Debug("running command", "cmd", name, "args", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Env = os.Environ()

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

func (e *Exec) Output(ctx context.Context, name string, args ...string) (string, error) {
	log.Debug("capturing command output", "cmd", name, "args", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()

	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return string(out), nil
}
