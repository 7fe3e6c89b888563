package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhanghan177/cvsetup/internal/config"
	"github.com/zhanghan177/cvsetup/internal/messages"
	"github.com/zhanghan177/cvsetup/internal/provision"
	"github.com/zhanghan177/cvsetup/internal/terminal"
)

var isInteractive = terminal.IsInteractive

const (
	flagYes    = "yes"
	flagDryRun = "dry-run"
	flagConfig = "config"
)

func newRootCmd() *cobra.Command {
	var (
		assumeYes  bool
		dryRun     bool
		configPath string
	)

	cmd := &cobra.Command{
		Use:   messages.RootUse,
		Short: messages.RootShort,
		Long:  messages.RootLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, source, err := config.LoadResolved(configPath)
			if err != nil {
				return err
			}
			printConfigSource(cmd, source)

			steps := provision.BuildPlan(provision.RealSystem{}, cfg)
			if dryRun {
				printPlan(out, steps)
				return nil
			}

			if !assumeYes && isInteractive() {
				ok, err := confirmRun(cfg)
				if err != nil {
					return err
				}
				if !ok {
					_, _ = fmt.Fprintln(out, messages.RunAborted)
					return &SilentExitError{Code: 1}
				}
			}

			runner := provision.NewRunner(out, cmd.OutOrStdout(), cmd.ErrOrStderr())
			return runner.Run(cmd.Context(), steps)
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, flagYes, "y", false, messages.RootFlagYes)
	cmd.Flags().BoolVar(&dryRun, flagDryRun, false, messages.RootFlagDryRun)
	cmd.PersistentFlags().StringVar(&configPath, flagConfig, "", messages.RootFlagConfig)

	cmd.AddCommand(newPlanCmd(&configPath))
	cmd.AddCommand(newDoctorCmd(&configPath))
	cmd.AddCommand(newInitCmd())

	return cmd
}

// printConfigSource reports where the effective config came from.
func printConfigSource(cmd *cobra.Command, source string) {
	if source == "" {
		_, _ = fmt.Fprint(cmd.ErrOrStderr(), messages.RunDefaultsInUse)
		return
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), messages.RunConfigSourceFmt, source)
}

// confirmPrompt summarizes what a run will install.
func confirmPrompt(cfg *config.Config) string {
	return fmt.Sprintf(messages.RunConfirmPromptFmt,
		strings.Join(cfg.Pip.Packages, ", "),
		strings.Join(cfg.Apt.Packages, ", "))
}
