package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/examprep/internal/activity"
	"github.com/abhisek/examprep/internal/ui/console"
	"github.com/abhisek/examprep/internal/ui/theme"
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Start or resume today's study session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStudy(cmd)
	},
}

func runStudy(cmd *cobra.Command) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()
	if err := requireSeeded(cmd, a); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	p := console.New(cmd.InOrStdin(), out)
	res, err := a.Study(cmd.Context(), p)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, summarizeDay(res))
	return nil
}

func summarizeDay(res *activity.DayResult) string {
	switch {
	case res.Day == 0:
		return theme.Correct.Render("Study plan complete. Run \"examprep status\" to check your readiness.")
	case res.Completed:
		return theme.Correct.Render(fmt.Sprintf("Day %d complete!", res.Day))
	case res.Abandoned:
		return theme.Notice.Render(fmt.Sprintf("Progress saved. Run \"examprep study\" to resume day %d.", res.Day))
	}
	return theme.Notice.Render(fmt.Sprintf("Day %d already finished.", res.Day))
}
