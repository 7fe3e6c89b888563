package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zhanghan177/cvsetup/internal/doctor"
	"github.com/zhanghan177/cvsetup/internal/messages"
)

func newDoctorCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			sys := doctor.RealSystem{}

			_, _ = fmt.Fprint(out, messages.DoctorHeader)

			var allResults []doctor.Result
			allResults = append(allResults, doctor.CheckOS(sys)...)

			configResults, cfg := doctor.CheckConfig(*configPath)
			allResults = append(allResults, configResults...)

			pipCommand := ""
			if cfg != nil {
				pipCommand = cfg.Pip.Command
			}
			allResults = append(allResults, doctor.CheckPython(sys, pipCommand)...)
			allResults = append(allResults, doctor.CheckApt(sys)...)
			allResults = append(allResults, doctor.CheckPrivilege(sys)...)

			for _, r := range allResults {
				printResult(out, r)
			}
			_, _ = fmt.Fprintln(out)

			if doctor.HasFailure(allResults) {
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorFailureSummary))
				return fmt.Errorf(messages.DoctorFailureError)
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSuccessSummary))
			return nil
		},
	}
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		printRecommendation(out, r.Recommendation)
	}
}

// printRecommendation renders a multi-line recommendation with consistent indentation.
func printRecommendation(out io.Writer, recommendation string) {
	lines := strings.Split(recommendation, "\n")
	for i, line := range lines {
		if i == 0 {
			_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationPrefix, line)
			continue
		}
		_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationIndent, line)
	}
}
