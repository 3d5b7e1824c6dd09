package interpolate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikenye/anime/match"
)

func mapFromCandidates(t *testing.T, byTarget map[int][]match.Candidate) *match.Map {
	t.Helper()
	m := match.NewMap()
	for target, cands := range byTarget {
		for _, c := range cands {
			m.Add(target, c.SourceIndex, c.SharedLen)
		}
	}
	return m
}

func TestExtensive_ScenarioE_PartialOverlap(t *testing.T) {
	m := mapFromCandidates(t, map[int][]match.Candidate{
		0: {{SourceIndex: 0, SharedLen: 6}},
	})
	values, targets := Extensive(m, []float64{10}, []float64{10})
	require.Equal(t, []int{0}, targets)
	assert.InDelta(t, 6.0, values[0], 1e-9)
}

func TestExtensive_ScenarioF_TwoSourcesOneTarget(t *testing.T) {
	m := mapFromCandidates(t, map[int][]match.Candidate{
		0: {{SourceIndex: 0, SharedLen: 5}, {SourceIndex: 1, SharedLen: 5}},
	})
	values, _ := Extensive(m, []float64{2, 8}, []float64{5, 5})
	assert.InDelta(t, 10.0, values[0], 1e-9)
}

func TestExtensive_ZeroSourceLengthContributesZero(t *testing.T) {
	m := mapFromCandidates(t, map[int][]match.Candidate{
		0: {{SourceIndex: 0, SharedLen: 3}},
	})
	values, _ := Extensive(m, []float64{10}, []float64{0})
	assert.Equal(t, 0.0, values[0])
}

func TestIntensive_ScenarioF_Mean(t *testing.T) {
	m := mapFromCandidates(t, map[int][]match.Candidate{
		0: {{SourceIndex: 0, SharedLen: 5}, {SourceIndex: 1, SharedLen: 5}},
	})
	values, _ := Intensive(m, []float64{2, 8}, []float64{10})
	assert.InDelta(t, 5.0, values[0], 1e-9)
}

func TestIntensive_ZeroTargetLengthStillWellDefined(t *testing.T) {
	m := mapFromCandidates(t, map[int][]match.Candidate{
		0: {{SourceIndex: 0, SharedLen: 6}, {SourceIndex: 1, SharedLen: 4}},
	})
	values, _ := Intensive(m, []float64{10, 20}, []float64{0})
	assert.InDelta(t, 14.0, values[0], 1e-9) // (10*6+20*4)/(6+4)
}

func TestIntensive_NoCandidatesIsEmpty(t *testing.T) {
	m := match.NewMap()
	values, targets := Intensive(m, []float64{1}, []float64{1})
	assert.Empty(t, values)
	assert.Empty(t, targets)
}
