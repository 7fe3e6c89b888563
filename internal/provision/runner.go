package provision

import (
	"context"
	"fmt"
	"io"

	"github.com/zhanghan177/cvsetup/internal/messages"
)

// Runner executes a provisioning plan strictly in order, halting on the first
// failure. It adds no retries, no rollback, and no translation of the
// underlying tools' diagnostics.
type Runner struct {
	Sys System
	// Out receives step banner lines and the final summary.
	Out io.Writer
	// Stdout and Stderr receive the package-manager streams unmodified.
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner returns a Runner wired to the real system and the given writers.
func NewRunner(out io.Writer, stdout io.Writer, stderr io.Writer) *Runner {
	return &Runner{Sys: RealSystem{}, Out: out, Stdout: stdout, Stderr: stderr}
}

// Run executes the steps sequentially. The first failing step is returned as
// a *StepError wrapping the underlying error; later steps never start.
func (r *Runner) Run(ctx context.Context, steps []Step) error {
	for _, step := range steps {
		if err := r.runStep(ctx, step); err != nil {
			return &StepError{Step: step, Err: err}
		}
	}
	_, _ = fmt.Fprintf(r.Out, messages.RunnerDoneFmt, len(steps))
	return nil
}

// runStep resolves the step's executable and runs it. Resolution happens
// immediately before execution so a tool missing for a later step does not
// block earlier ones.
func (r *Runner) runStep(ctx context.Context, step Step) error {
	_, _ = fmt.Fprintf(r.Out, messages.RunnerStepHeaderFmt, step.Name, step.CommandLine())

	argv := step.Argv()
	path, err := r.Sys.LookPath(argv[0])
	if err != nil {
		return fmt.Errorf(messages.ProvisionCommandNotFound, argv[0])
	}
	return r.Sys.RunCommand(ctx, path, argv[1:], r.Stdout, r.Stderr)
}
