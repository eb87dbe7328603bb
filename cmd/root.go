package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/examprep/internal/app"
	"github.com/abhisek/examprep/internal/config"
	"github.com/abhisek/examprep/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "examprep",
	Short: "Certification exam study planner",
	Long: "examprep works through a day-by-day study plan of reading, spaced-repetition\n" +
		"flashcards and practice quizzes, and scores how ready you are for the exam.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStudy(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EXAMPREP_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides EXAMPREP_CONFIG env var)")
	rootCmd.PersistentFlags().String("log", "", "Log mode: quiet, dev or prod (overrides EXAMPREP_LOG_MODE env var)")

	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(flashcardsCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(restartCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig builds the configuration, letting --db and --log win over the
// file and the environment.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if m, _ := cmd.Flags().GetString("log"); m != "" {
		cfg.LogMode = m
	}
	return cfg, nil
}

// openApp loads configuration, builds the logger and opens the database.
// The caller must Close the returned app.
func openApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	a, err := app.Open(cfg, log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("open store: %w", err)
	}
	return a, nil
}

// requireSeeded fails with a hint when no content has been loaded yet.
func requireSeeded(cmd *cobra.Command, a *app.App) error {
	ok, err := a.Seeded(cmd.Context())
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no study content loaded; run %q first", "examprep seed <file>")
	}
	return nil
}
