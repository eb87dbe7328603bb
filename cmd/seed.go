package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/examprep/internal/content"
	"github.com/abhisek/examprep/internal/ui/theme"
)

var seedCmd = &cobra.Command{
	Use:   "seed <file>",
	Short: "Load domains, flashcards, questions and the plan from a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := content.ParseFile(args[0])
		if err != nil {
			return err
		}
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		sum, err := content.Seed(cmd.Context(), a.Store, f, a.Log)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if sum.Skipped {
			fmt.Fprintln(out, theme.Notice.Render("Content already loaded; nothing to do."))
			return nil
		}
		fmt.Fprintln(out, theme.Correct.Render(fmt.Sprintf(
			"Loaded %d domains, %d subtopics, %d flashcards, %d questions and a %d-day plan.",
			sum.Domains, sum.Subtopics, sum.Flashcards, sum.Questions, sum.Days)))
		return nil
	},
}
