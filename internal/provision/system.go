package provision

import (
	"context"
	"io"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// System abstracts the OS operations the planner and runner need.
// This interface is intentionally package-local so unit tests can stub PATH
// lookups and privilege without shared global state; doctor defines its own
// System with the operations specific to its checks.
type System interface {
	LookPath(file string) (string, error)
	RunCommand(ctx context.Context, path string, args []string, stdout io.Writer, stderr io.Writer) error
	Geteuid() int
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// LookPath searches for an executable in the directories named by PATH.
func (RealSystem) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// RunCommand executes path with args, streaming output to the provided
// writers. Stdin is connected so the underlying tools can prompt
// (e.g. an un-flagged apt-get install confirmation or a sudo password).
func (RealSystem) RunCommand(ctx context.Context, path string, args []string, stdout io.Writer, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// Geteuid returns the effective user id of the current process.
func (RealSystem) Geteuid() int {
	return unix.Geteuid()
}
