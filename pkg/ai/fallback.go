package ai

import (
	"fmt"

	"github.com/campus-sathi/campus-sathi/pkg/types"
	"github.com/campus-sathi/campus-sathi/pkg/utils"
)

var fallbackSuggestions = []string{
	"What are the office contact details?",
	"What are the office working hours?",
}

// FallbackResponse answers without a generative model: the single best
// fragment, truncated, with a pointer to the office. Confidence comes from
// that fragment's relevance alone.
func FallbackResponse(query string, fragments []types.ScoredFragment) GenerateResult {
	var (
		response   string
		confidence int
	)

	if len(fragments) > 0 {
		best := fragments[0]
		response = fmt.Sprintf("Based on our records:\n\n%s\n\nFor more details, please contact the relevant office.",
			utils.TruncateRunes(best.Content, types.FRAGMENT_CONTENT_LIMIT))
		confidence = int(best.Score * 100)
	} else {
		response = "I couldn't find specific information about your query. " +
			"Please contact the administrative office for assistance, " +
			"or try rephrasing your question."
		confidence = 20
	}

	return GenerateResult{
		Response:           response,
		Confidence:         confidence,
		NeedsEscalation:    confidence < 50,
		SuggestedQuestions: capSuggestions(fallbackSuggestions),
		SourcesUsed:        len(fragments),
		Fallback:           true,
	}
}
