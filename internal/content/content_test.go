package content

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/examprep/internal/apperr"
	"github.com/abhisek/examprep/internal/store"
	"github.com/abhisek/examprep/internal/store/storetest"
)

func TestParseFile(t *testing.T) {
	f, err := ParseFile("testdata/sample.yaml")
	require.NoError(t, err)
	require.Len(t, f.Domains, 2)
	assert.Equal(t, 3, f.Domains[1].Section)
	assert.Len(t, f.Domains[0].Flashcards, 2)
	assert.Len(t, f.Plan, 3)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no domains", "domains: []\n"},
		{"bad answer", `
domains:
  - name: D
    questions:
      - stem: S
        choices: [a, b, c, d]
        answer: e
`},
		{"three choices", `
domains:
  - name: D
    questions:
      - stem: S
        choices: [a, b, c]
        answer: a
`},
		{"unknown subtopic", `
domains:
  - name: D
    flashcards:
      - front: F
        back: B
        subtopic: Nope
`},
		{"unknown plan domain", `
domains:
  - name: D
plan:
  - domain: E
    days: 1
`},
		{"duplicate domain", `
domains:
  - name: D
  - name: D
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.yaml))
			assert.True(t, apperr.IsValidation(err), "err = %v", err)
		})
	}
}

func TestParseUnknownField(t *testing.T) {
	_, err := Parse(strings.NewReader("domains:\n  - name: D\n    colour: red\n"))
	assert.Error(t, err)
}

func TestSeed(t *testing.T) {
	st := storetest.Open(t)
	ctx := context.Background()
	f, err := ParseFile("testdata/sample.yaml")
	require.NoError(t, err)

	sum, err := Seed(ctx, st, f, nil)
	require.NoError(t, err)
	assert.Equal(t, &Summary{Domains: 2, Subtopics: 3, Flashcards: 3, Questions: 2, Days: 4}, sum)

	days, err := st.Content().StudyDays(ctx)
	require.NoError(t, err)
	require.Len(t, days, 4)
	assert.Equal(t, "Deploying and implementing a cloud solution", days[0].Edges.Domain.Name)
	assert.Equal(t, "Compute options overview.", days[1].ReadingContent)
	assert.Equal(t, "Setting up a cloud solution environment", days[2].Edges.Domain.Name)
	assert.Nil(t, days[3].DomainID)

	domains, err := st.Content().Domains(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, domains[0].SectionNumber)

	qs, err := st.Content().Questions(ctx, store.QuestionFilter{DomainID: &domains[0].ID})
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, "a", qs[0].CorrectAnswer)
	assert.NotNil(t, qs[0].SubtopicID)

	again, err := Seed(ctx, st, f, nil)
	require.NoError(t, err)
	assert.True(t, again.Skipped)
	n, err := st.Client().Domain.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
