// Package provision builds and runs the ordered sequence of package-manager
// invocations that installs OpenCV onto the host.
package provision

import (
	"fmt"
	"strings"

	"github.com/zhanghan177/cvsetup/internal/messages"
)

// Step is one external package-manager invocation in the provisioning plan.
type Step struct {
	// ID identifies the step in tests and machine-facing output.
	ID string
	// Name is the human-readable step label.
	Name string
	// Command is the executable name, resolved on PATH at execution time.
	Command string
	// Args are the command arguments.
	Args []string
	// Elevate prefixes the invocation with sudo.
	Elevate bool
}

// Step IDs.
const (
	StepPipInstall = "pip-install"
	StepAptUpdate  = "apt-update"
	StepAptInstall = "apt-install"
)

// Argv returns the full argument vector the step executes, including the
// sudo prefix when the step is elevated.
func (s Step) Argv() []string {
	argv := make([]string, 0, len(s.Args)+2)
	if s.Elevate {
		argv = append(argv, "sudo")
	}
	argv = append(argv, s.Command)
	argv = append(argv, s.Args...)
	return argv
}

// CommandLine renders the step as a shell-style command line for display.
func (s Step) CommandLine() string {
	return strings.Join(s.Argv(), " ")
}

// StepError wraps a step failure. The underlying package-manager error is
// preserved so callers can recover the tool's exit status via errors.As.
type StepError struct {
	Step Step
	Err  error
}

// Error formats the step failure with the underlying tool's error.
func (e *StepError) Error() string {
	return fmt.Sprintf(messages.ProvisionStepFailedFmt, e.Step.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *StepError) Unwrap() error {
	return e.Err
}
