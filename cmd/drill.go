package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/examprep/internal/activity"
	"github.com/abhisek/examprep/internal/app"
	"github.com/abhisek/examprep/internal/apperr"
	"github.com/abhisek/examprep/internal/ui/console"
	"github.com/abhisek/examprep/internal/ui/theme"
)

var flashcardsCmd = &cobra.Command{
	Use:   "flashcards",
	Short: "Review due flashcards outside the plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		if err := requireSeeded(cmd, a); err != nil {
			return err
		}

		domainID, count, err := drillFlags(cmd, a, a.Config.Drill.Flashcards)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		res, err := a.DrillFlashcards(cmd.Context(), domainID, count, console.New(cmd.InOrStdin(), out))
		if err != nil {
			return err
		}
		if res.Presented == 0 {
			fmt.Fprintln(out, theme.Correct.Render("No flashcards due. Come back tomorrow!"))
			return nil
		}
		printResult(out, "cards", "recalled", res)
		return nil
	},
}

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Answer practice questions outside the plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		if err := requireSeeded(cmd, a); err != nil {
			return err
		}

		domainID, count, err := drillFlags(cmd, a, a.Config.Drill.Questions)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		res, err := a.DrillQuiz(cmd.Context(), domainID, count, console.New(cmd.InOrStdin(), out))
		if err != nil {
			return err
		}
		if res.Presented == 0 {
			fmt.Fprintln(out, theme.Notice.Render("No questions available."))
			return nil
		}
		printResult(out, "questions", "correct", res)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{flashcardsCmd, quizCmd} {
		c.Flags().Int("domain", 0, "Limit to the domain with this section number")
		c.Flags().Int("count", 0, "Number of items (defaults to the configured drill size)")
	}
}

// drillFlags resolves --domain and --count.
func drillFlags(cmd *cobra.Command, a *app.App, defaultCount int) (*int, int, error) {
	section, _ := cmd.Flags().GetInt("domain")
	count, _ := cmd.Flags().GetInt("count")
	if count <= 0 {
		count = defaultCount
	}
	if section == 0 {
		return nil, count, nil
	}
	id, err := domainBySection(cmd.Context(), a, section)
	return id, count, err
}

func domainBySection(ctx context.Context, a *app.App, section int) (*int, error) {
	domains, err := a.Store.Content().Domains(ctx)
	if err != nil {
		return nil, err
	}
	for _, d := range domains {
		if d.SectionNumber == section {
			return &d.ID, nil
		}
	}
	return nil, apperr.NotFound("domain section", section)
}

func printResult(w io.Writer, items, passed string, res *activity.Result) {
	msg := fmt.Sprintf("%d %s done, %d %s.", res.Committed, items, res.Passed, passed)
	if res.Abandoned {
		msg += " Stopped early."
	}
	fmt.Fprintln(w, theme.Heading.Render(msg))
}
