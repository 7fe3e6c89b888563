// Package install writes the default cvsetup config file into a directory,
// previewing differences before overwriting an existing one.
package install

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"

	"github.com/zhanghan177/cvsetup/internal/config"
	"github.com/zhanghan177/cvsetup/internal/messages"
	"github.com/zhanghan177/cvsetup/internal/templates"
)

// Outcome describes what Run did with the config file.
type Outcome int

const (
	// OutcomeCreated means the config file did not exist and was written.
	OutcomeCreated Outcome = iota
	// OutcomeUnchanged means the existing file already matches the default.
	OutcomeUnchanged
	// OutcomeOverwritten means an existing, differing file was replaced.
	OutcomeOverwritten
	// OutcomeSkipped means the operator declined to overwrite.
	OutcomeSkipped
)

// PromptOverwriteFunc asks the operator whether to overwrite the existing
// config; diff is a unified diff between the existing file and the default.
type PromptOverwriteFunc func(path string, diff string) (bool, error)

// Options configure Run.
type Options struct {
	// Dir is the directory the config file is written into.
	Dir string
	// Force overwrites a differing file without prompting.
	Force bool
	// Prompt is consulted for differing files when Force is unset.
	Prompt PromptOverwriteFunc
}

// Run writes the default config file according to opts and reports the outcome.
func Run(opts Options) (Outcome, error) {
	template, err := templates.Read(config.FileName)
	if err != nil {
		return OutcomeSkipped, err
	}

	path := filepath.Join(opts.Dir, config.FileName)
	existing, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := os.WriteFile(path, template, 0o644); err != nil {
			return OutcomeSkipped, err
		}
		return OutcomeCreated, nil
	}
	if err != nil {
		return OutcomeSkipped, err
	}

	if bytes.Equal(existing, template) {
		return OutcomeUnchanged, nil
	}

	if !opts.Force {
		if opts.Prompt == nil {
			return OutcomeSkipped, errors.New(messages.InitOverwritePromptMissing)
		}
		ok, err := opts.Prompt(path, DiffAgainstDefault(path, existing, template))
		if err != nil {
			return OutcomeSkipped, err
		}
		if !ok {
			return OutcomeSkipped, nil
		}
	}
	if err := os.WriteFile(path, template, 0o644); err != nil {
		return OutcomeSkipped, err
	}
	return OutcomeOverwritten, nil
}
