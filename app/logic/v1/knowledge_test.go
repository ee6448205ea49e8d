package v1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-sathi/campus-sathi/pkg/types"
)

func TestRankFragmentsDropsBelowThreshold(t *testing.T) {
	hits := []types.ScoredFragment{
		{ID: "low", Score: 0.2},
		{ID: "best", Score: 0.9},
		{ID: "boundary", Score: types.SCORE_THRESHOLD},
		{ID: "mid", Score: 0.5},
	}

	ranked := rankFragments(hits)

	require.Len(t, ranked, 3)
	assert.Equal(t, "best", ranked[0].ID)
	assert.Equal(t, "mid", ranked[1].ID)
	assert.Equal(t, "boundary", ranked[2].ID)
	for _, hit := range ranked {
		assert.GreaterOrEqual(t, hit.Score, float64(types.SCORE_THRESHOLD))
	}
}

func TestRankFragmentsOrdersDescending(t *testing.T) {
	hits := []types.ScoredFragment{
		{ID: "c", Score: 0.4},
		{ID: "a", Score: 0.8},
		{ID: "b", Score: 0.6},
	}

	ranked := rankFragments(hits)

	require.Len(t, ranked, 3)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}

func TestRankFragmentsEmpty(t *testing.T) {
	assert.Empty(t, rankFragments(nil))
}
