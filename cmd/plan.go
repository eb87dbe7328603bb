package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/examprep/internal/ui/console"
	"github.com/abhisek/examprep/internal/ui/theme"
	"github.com/abhisek/examprep/internal/ui/views"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "List the study plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		if err := requireSeeded(cmd, a); err != nil {
			return err
		}

		entries, err := a.Session.Plan(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), views.RenderPlan(entries))
		return nil
	},
}

var restartCmd = &cobra.Command{
	Use:   "restart <day>",
	Short: "Clear a started or completed day so it can be studied again",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("day must be a number: %w", err)
		}
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Session.Restart(cmd.Context(), day); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), theme.Notice.Render(fmt.Sprintf("Day %d cleared.", day)))
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all study progress and history",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			ok, err := console.New(cmd.InOrStdin(), out).Confirm(ctx, "Erase all progress, reviews and quiz history?")
			if err != nil || !ok {
				return err
			}
		}
		if err := a.Session.ResetAll(ctx); err != nil {
			return err
		}
		fmt.Fprintln(out, theme.Notice.Render("All progress reset."))
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
