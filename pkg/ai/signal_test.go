package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campus-sathi/campus-sathi/pkg/types"
)

func TestConfidenceWithoutEvidence(t *testing.T) {
	assert.Equal(t, 30, Confidence(nil))
	assert.Equal(t, 30, Confidence([]types.ScoredFragment{}))
}

func TestConfidenceAveragesTopThree(t *testing.T) {
	fragments := []types.ScoredFragment{
		{Score: 0.9},
		{Score: 0.8},
		{Score: 0.7},
		{Score: 0.1}, // beyond top 3, must not count
	}
	assert.Equal(t, 80, Confidence(fragments))
}

func TestConfidenceClamped(t *testing.T) {
	assert.Equal(t, 95, Confidence([]types.ScoredFragment{{Score: 1.0}}))
	assert.Equal(t, 10, Confidence([]types.ScoredFragment{{Score: 0.01}}))
}

func TestNeedsEscalationSensitiveTopic(t *testing.T) {
	// a sensitive topic escalates regardless of evidence strength
	assert.True(t, NeedsEscalation("How do I get a Fee Refund?", "You can apply at the accounts office.", 90))
	assert.True(t, NeedsEscalation("I have a complaint about the hostel", "Noted.", 95))
}

func TestNeedsEscalationLowConfidence(t *testing.T) {
	assert.True(t, NeedsEscalation("When is the library open?", "The library is open 9 to 5.", 39))
	assert.False(t, NeedsEscalation("When is the library open?", "The library is open 9 to 5.", 40))
}

func TestNeedsEscalationUncertainAnswer(t *testing.T) {
	assert.True(t, NeedsEscalation("When is the fest?", "I'm not sure about the exact date.", 85))
	assert.False(t, NeedsEscalation("When is the fest?", "The fest starts on March 3rd.", 85))
}

func TestDetectIntent(t *testing.T) {
	assert.Equal(t, "fees", DetectIntent("How much is the tuition fee?"))
	assert.Equal(t, "admission", DetectIntent("I want to apply for the CS program"))
	assert.Equal(t, "hostel", DetectIntent("Is there a mess in the hostel?"))
	assert.Equal(t, INTENT_GENERAL, DetectIntent("hello there"))
}

func TestDetectIntentOrderIsStable(t *testing.T) {
	// "exam fee" matches both fees and examination; the table order decides
	assert.Equal(t, "fees", DetectIntent("what is the exam fee"))
}

func TestSuggestQuestions(t *testing.T) {
	suggestions := SuggestQuestions("how do I pay my fee online")
	assert.NotEmpty(t, suggestions)
	assert.Contains(t, suggestions, "What are the scholarship options available?")

	generic := SuggestQuestions("completely unrelated text")
	assert.Equal(t, genericSuggestions, generic)

	for _, set := range [][]string{suggestions, generic} {
		assert.LessOrEqual(t, len(set), types.MAX_SUGGESTED_QUESTIONS)
	}
}
