package weakarea

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/examprep/internal/store/storetest"
)

// answers logs correct and wrong answers against a fresh question.
func answers(b *storetest.Builder, domainID int, subtopicID *int, correct, wrong int) {
	q := b.Question(domainID, subtopicID, "a")
	for i := 0; i < correct; i++ {
		b.Answer(q, true)
	}
	for i := 0; i < wrong; i++ {
		b.Answer(q, false)
	}
}

func TestWeakDomains(t *testing.T) {
	st := storetest.Open(t)
	b := storetest.NewBuilder(t, st)
	compute := b.Domain("Compute", 1)
	storage := b.Domain("Storage", 2)
	network := b.Domain("Networking", 3)
	b.Domain("Security", 4) // no answers

	answers(b, compute, nil, 1, 3) // 25%
	answers(b, storage, nil, 3, 1) // 75%
	answers(b, network, nil, 1, 1) // 50%

	weak, err := NewAnalyzer(st).WeakDomains(context.Background(), DefaultThreshold)
	require.NoError(t, err)
	require.Len(t, weak, 2)

	assert.Equal(t, "Compute", weak[0].Name)
	assert.Equal(t, 25.0, weak[0].Score)
	assert.Equal(t, 4, weak[0].Total)
	assert.Equal(t, 1, weak[0].Correct)
	assert.Equal(t, "Networking", weak[1].Name)
	assert.Equal(t, 50.0, weak[1].Score)
}

func TestWeakDomainsThresholdIsStrict(t *testing.T) {
	st := storetest.Open(t)
	b := storetest.NewBuilder(t, st)
	d := b.Domain("Compute", 1)
	answers(b, d, nil, 7, 3) // exactly 70%

	weak, err := NewAnalyzer(st).WeakDomains(context.Background(), 70)
	require.NoError(t, err)
	assert.Empty(t, weak)

	weak, err = NewAnalyzer(st).WeakDomains(context.Background(), 70.1)
	require.NoError(t, err)
	assert.Len(t, weak, 1)
}

func TestWeakSubtopics(t *testing.T) {
	st := storetest.Open(t)
	b := storetest.NewBuilder(t, st)
	d := b.Domain("Compute", 1)
	vms := b.Subtopic(d, "VMs")
	gke := b.Subtopic(d, "GKE")
	fns := b.Subtopic(d, "Functions")
	b.Subtopic(d, "Batch") // no answers

	answers(b, d, &vms, 1, 2) // 66.7% errors
	answers(b, d, &gke, 0, 4) // 100% errors
	answers(b, d, &fns, 7, 3) // 30% errors, not above 30

	weak, err := NewAnalyzer(st).WeakSubtopics(context.Background(), DefaultThreshold)
	require.NoError(t, err)
	require.Len(t, weak, 2)

	assert.Equal(t, "GKE", weak[0].Name)
	assert.Equal(t, 100.0, weak[0].ErrorRate)
	assert.Equal(t, "Compute", weak[0].DomainName)

	assert.Equal(t, "VMs", weak[1].Name)
	assert.Equal(t, 66.7, weak[1].ErrorRate)
	assert.Equal(t, 2, weak[1].Errors)
	assert.Equal(t, 3, weak[1].Total)
}

func TestNoHistoryMeansNoWeakAreas(t *testing.T) {
	st := storetest.Open(t)
	b := storetest.NewBuilder(t, st)
	d := b.Domain("Compute", 1)
	b.Subtopic(d, "VMs")

	a := NewAnalyzer(st)
	domains, err := a.WeakDomains(context.Background(), DefaultThreshold)
	require.NoError(t, err)
	assert.Empty(t, domains)

	subs, err := a.WeakSubtopics(context.Background(), DefaultThreshold)
	require.NoError(t, err)
	assert.Empty(t, subs)
}
