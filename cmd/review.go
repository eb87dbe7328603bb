package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/examprep/internal/ui/console"
	"github.com/abhisek/examprep/internal/ui/theme"
	"github.com/abhisek/examprep/internal/ui/views"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Show weak areas and drill the weakest domain",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		w, err := a.WeakAreas(ctx)
		if err != nil {
			return err
		}
		fmt.Fprint(out, views.RenderWeakAreas(w.Domains, w.Subtopics))

		if noDrill, _ := cmd.Flags().GetBool("no-drill"); noDrill || w.Weakest() == nil {
			return nil
		}

		p := console.New(cmd.InOrStdin(), out)
		ok, err := p.Confirm(ctx, fmt.Sprintf("\nDrill %s now?", w.Weakest().Name))
		if err != nil || !ok {
			return err
		}
		res, err := a.ReviewWeakest(ctx, w, p)
		if err != nil {
			return err
		}
		if res.Flashcards.Presented > 0 {
			printResult(out, "cards", "recalled", res.Flashcards)
		}
		if res.Quiz != nil && res.Quiz.Presented > 0 {
			printResult(out, "questions", "correct", res.Quiz)
		}
		if res.Flashcards.Presented == 0 && (res.Quiz == nil || res.Quiz.Presented == 0) {
			fmt.Fprintln(out, theme.Notice.Render("Nothing to drill in "+res.Domain.Name+" right now."))
		}
		return nil
	},
}

func init() {
	reviewCmd.Flags().Bool("no-drill", false, "Only print the weak-area report")
}
