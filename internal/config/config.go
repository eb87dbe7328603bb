package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds runtime settings for the CLI and the study engine.
type Config struct {
	// DBPath overrides the default database location when set.
	DBPath string `yaml:"db_path"`

	// LogMode selects the logger: "quiet", "dev" or "prod".
	LogMode string `yaml:"log_mode"`

	Study  StudyConfig  `yaml:"study"`
	Drill  DrillConfig  `yaml:"drill"`
	Review ReviewConfig `yaml:"review"`
}

// StudyConfig sizes the components of a plan day.
type StudyConfig struct {
	FlashcardsPerDay int `yaml:"flashcards_per_day"`
	QuestionsPerDay  int `yaml:"questions_per_day"`
}

// DrillConfig sizes ad-hoc flashcard and quiz drills.
type DrillConfig struct {
	Flashcards int `yaml:"flashcards"`
	Questions  int `yaml:"questions"`
}

// ReviewConfig controls weak-area detection and the remediation drill.
type ReviewConfig struct {
	// Threshold is the accuracy percentage below which an area is weak.
	Threshold  float64 `yaml:"threshold"`
	Flashcards int     `yaml:"flashcards"`
	Questions  int     `yaml:"questions"`
}

// DefaultConfig returns a Config with the stock plan sizes.
func DefaultConfig() Config {
	return Config{
		LogMode: "quiet",
		Study: StudyConfig{
			FlashcardsPerDay: 12,
			QuestionsPerDay:  8,
		},
		Drill: DrillConfig{
			Flashcards: 15,
			Questions:  10,
		},
		Review: ReviewConfig{
			Threshold:  70,
			Flashcards: 10,
			Questions:  5,
		},
	}
}

// Load builds the effective configuration: defaults, then the YAML file at
// path (if non-empty), then environment variables. A .env file in the working
// directory is loaded first when present.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := DefaultConfig()
	if path == "" {
		path = os.Getenv("EXAMPREP_CONFIG")
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// mergeFile overlays the YAML file at path onto c. Keys absent from the
// file keep their current values.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if p := os.Getenv("EXAMPREP_DB"); p != "" {
		c.DBPath = p
	}
	if m := os.Getenv("EXAMPREP_LOG_MODE"); m != "" {
		c.LogMode = m
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"EXAMPREP_FLASHCARDS_PER_DAY", &c.Study.FlashcardsPerDay},
		{"EXAMPREP_QUESTIONS_PER_DAY", &c.Study.QuestionsPerDay},
		{"EXAMPREP_DRILL_FLASHCARDS", &c.Drill.Flashcards},
		{"EXAMPREP_DRILL_QUESTIONS", &c.Drill.Questions},
	}
	for _, e := range ints {
		v := os.Getenv(e.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", e.key, err)
		}
		*e.dst = n
	}

	if v := os.Getenv("EXAMPREP_WEAK_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("EXAMPREP_WEAK_THRESHOLD: %w", err)
		}
		c.Review.Threshold = f
	}
	return nil
}

// Validate checks that sizes are positive and the threshold is a percentage.
func (c Config) Validate() error {
	sizes := map[string]int{
		"study.flashcards_per_day": c.Study.FlashcardsPerDay,
		"study.questions_per_day":  c.Study.QuestionsPerDay,
		"drill.flashcards":         c.Drill.Flashcards,
		"drill.questions":          c.Drill.Questions,
		"review.flashcards":        c.Review.Flashcards,
		"review.questions":         c.Review.Questions,
	}
	for name, v := range sizes {
		if v <= 0 {
			return fmt.Errorf("%s must be positive, got %d", name, v)
		}
	}
	switch c.LogMode {
	case "", "quiet", "dev", "prod":
	default:
		return fmt.Errorf("log_mode must be quiet, dev or prod, got %q", c.LogMode)
	}
	if c.Review.Threshold < 0 || c.Review.Threshold > 100 {
		return fmt.Errorf("review.threshold must be within 0-100, got %g", c.Review.Threshold)
	}
	return nil
}
