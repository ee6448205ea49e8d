package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campus-sathi/campus-sathi/pkg/types"
)

func TestFallbackResponseWithEvidence(t *testing.T) {
	fragments := []types.ScoredFragment{
		{Content: "The fee deadline is July 15.", Score: 0.9},
		{Content: "Late fee is 500.", Score: 0.5},
	}

	res := FallbackResponse("fee deadline", fragments)

	assert.True(t, res.Fallback)
	assert.Contains(t, res.Response, "The fee deadline is July 15.")
	assert.Contains(t, res.Response, "contact the relevant office")
	assert.Equal(t, 90, res.Confidence)
	assert.False(t, res.NeedsEscalation)
	assert.Equal(t, 2, res.SourcesUsed)
}

func TestFallbackResponseWeakEvidenceEscalates(t *testing.T) {
	res := FallbackResponse("fee deadline", []types.ScoredFragment{{Content: "something", Score: 0.4}})

	assert.Equal(t, 40, res.Confidence)
	assert.True(t, res.NeedsEscalation)
}

func TestFallbackResponseWithoutEvidence(t *testing.T) {
	res := FallbackResponse("anything", nil)

	assert.True(t, res.Fallback)
	assert.Equal(t, 20, res.Confidence)
	assert.True(t, res.NeedsEscalation)
	assert.Equal(t, 0, res.SourcesUsed)
	assert.Contains(t, res.Response, "couldn't find specific information")
}

func TestFallbackResponseTruncatesLongFragment(t *testing.T) {
	long := strings.Repeat("a", types.FRAGMENT_CONTENT_LIMIT+100)
	res := FallbackResponse("q", []types.ScoredFragment{{Content: long, Score: 0.8}})

	assert.NotContains(t, res.Response, long)
	assert.Contains(t, res.Response, strings.Repeat("a", types.FRAGMENT_CONTENT_LIMIT))
}
