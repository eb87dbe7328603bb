package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleContent = "../internal/content/testdata/sample.yaml"

func execute(t *testing.T, db, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--db", db, "--log", "prod"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, filepath.Join(t.TempDir(), "x.db"), "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "examprep (devel)")
}

func TestCommands_EndToEnd(t *testing.T) {
	db := filepath.Join(t.TempDir(), "examprep.db")

	_, err := execute(t, db, "", "study")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no study content loaded")

	out, err := execute(t, db, "", "seed", sampleContent)
	require.NoError(t, err)
	assert.Contains(t, out, "Loaded 2 domains")

	out, err = execute(t, db, "", "seed", sampleContent)
	require.NoError(t, err)
	assert.Contains(t, out, "nothing to do")

	out, err = execute(t, db, "", "plan")
	require.NoError(t, err)
	assert.Contains(t, out, "4-Day Study Plan")

	out, err = execute(t, db, "q\n", "study")
	require.NoError(t, err)
	assert.Contains(t, out, "resume day 1")

	out, err = execute(t, db, "", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Session Day 1 of 4 (Calendar Day 1)")

	out, err = execute(t, db, "", "review", "--no-drill")
	require.NoError(t, err)
	assert.Contains(t, out, "No weak areas detected")

	out, err = execute(t, db, "n\n", "reset")
	require.NoError(t, err)
	assert.NotContains(t, out, "All progress reset.")

	out, err = execute(t, db, "", "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "All progress reset.")

	out, err = execute(t, db, "", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Session Day 1 of 4")
	assert.NotContains(t, out, "Calendar Day")
}

func TestDrill_UnknownSection(t *testing.T) {
	db := filepath.Join(t.TempDir(), "examprep.db")
	_, err := execute(t, db, "", "seed", sampleContent)
	require.NoError(t, err)

	_, err = execute(t, db, "", "quiz", "--domain", "9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRestart_BadDay(t *testing.T) {
	_, err := execute(t, filepath.Join(t.TempDir(), "x.db"), "", "restart", "abc")
	require.Error(t, err)
}
