package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/zhanghan177/cvsetup/internal/config"
	"github.com/zhanghan177/cvsetup/internal/install"
	"github.com/zhanghan177/cvsetup/internal/messages"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   messages.InitUse,
		Short: messages.InitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			outcome, err := install.Run(install.Options{
				Dir:    ".",
				Force:  force,
				Prompt: overwritePrompt(out),
			})
			if err != nil {
				return err
			}

			switch outcome {
			case install.OutcomeCreated:
				_, _ = fmt.Fprintf(out, messages.InitCreatedFmt, config.FileName)
			case install.OutcomeUnchanged:
				_, _ = fmt.Fprintf(out, messages.InitUnchangedFmt, config.FileName)
			case install.OutcomeOverwritten:
				_, _ = fmt.Fprintf(out, messages.InitOverwrittenFmt, config.FileName)
			case install.OutcomeSkipped:
				_, _ = fmt.Fprintf(out, messages.InitSkippedFmt, config.FileName)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, messages.InitFlagForce)
	return cmd
}

// overwritePrompt shows the diff against the default config and asks whether
// to overwrite. Non-interactive sessions cannot answer, so they fail with a
// pointer at --force instead of hanging.
func overwritePrompt(out io.Writer) install.PromptOverwriteFunc {
	return func(path string, diff string) (bool, error) {
		if !isInteractive() {
			return false, fmt.Errorf(messages.InitRequiresTerminal)
		}
		_, _ = fmt.Fprintln(out, messages.InitDiffHeader)
		_, _ = fmt.Fprint(out, diff)

		overwrite := false
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf(messages.InitOverwritePromptFmt, path)).
					Value(&overwrite),
			),
		)
		if err := runConfirmForm(form, &overwrite); err != nil {
			return false, err
		}
		return overwrite, nil
	}
}
