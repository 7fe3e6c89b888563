package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zhanghan177/cvsetup/internal/config"
	"github.com/zhanghan177/cvsetup/internal/messages"
	"github.com/zhanghan177/cvsetup/internal/provision"
)

func newPlanCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   messages.PlanUse,
		Short: messages.PlanShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, source, err := config.LoadResolved(*configPath)
			if err != nil {
				return err
			}
			printConfigSource(cmd, source)
			printPlan(cmd.OutOrStdout(), provision.BuildPlan(provision.RealSystem{}, cfg))
			return nil
		},
	}
}

// printPlan renders the ordered steps without executing them.
func printPlan(out io.Writer, steps []provision.Step) {
	_, _ = fmt.Fprintln(out, messages.PlanHeader)
	for i, step := range steps {
		_, _ = fmt.Fprintf(out, messages.PlanStepLineFmt, i+1, step.Name, step.CommandLine())
	}
}
