package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/examprep/internal/logger"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 12, cfg.Study.FlashcardsPerDay)
	assert.Equal(t, 8, cfg.Study.QuestionsPerDay)
	assert.Equal(t, 70.0, cfg.Review.Threshold)
}

func TestLoad_FileThenEnv(t *testing.T) {
	t.Chdir(t.TempDir())

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "study:\n  flashcards_per_day: 20\nreview:\n  threshold: 80\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("EXAMPREP_QUESTIONS_PER_DAY", "4")
	t.Setenv("EXAMPREP_DB", "/tmp/prep.db")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Study.FlashcardsPerDay)
	assert.Equal(t, 4, cfg.Study.QuestionsPerDay)
	assert.Equal(t, 80.0, cfg.Review.Threshold)
	assert.Equal(t, 15, cfg.Drill.Flashcards, "keys absent from the file keep defaults")
	assert.Equal(t, "/tmp/prep.db", cfg.DBPath)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("EXAMPREP_DRILL_QUESTIONS=3\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("EXAMPREP_DRILL_QUESTIONS") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Drill.Questions)
}

func TestLoad_BadEnvValue(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("EXAMPREP_DRILL_FLASHCARDS", "lots")

	_, err := Load("")
	require.Error(t, err)
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero flashcards per day", func(c *Config) { c.Study.FlashcardsPerDay = 0 }},
		{"negative drill questions", func(c *Config) { c.Drill.Questions = -1 }},
		{"threshold over 100", func(c *Config) { c.Review.Threshold = 120 }},
		{"unknown log mode", func(c *Config) { c.LogMode = "verbose" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestDefaultLogModeIsQuiet(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, logger.ModeQuiet, cfg.LogMode)

	l, err := logger.New(cfg.LogMode)
	require.NoError(t, err)
	assert.False(t, l.Enabled(zap.DebugLevel), "default mode must not write debug output")
	assert.False(t, l.Enabled(zap.InfoLevel))
	assert.True(t, l.Enabled(zap.WarnLevel))
}
