package v1

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-sathi/campus-sathi/pkg/translate"
	"github.com/campus-sathi/campus-sathi/pkg/types"
)

func TestExpandQueryWithoutHistory(t *testing.T) {
	assert.Equal(t, "when is the exam", ExpandQueryWithContext("when is the exam", nil))
}

func TestExpandQueryIncludesAssistantAnswer(t *testing.T) {
	history := []*types.Message{
		{Role: types.USER_ROLE_USER, Content: "what is the hostel fee"},
		{Role: types.USER_ROLE_ASSISTANT, Content: "the hostel fee is 5000 per semester"},
	}

	expanded := ExpandQueryWithContext("and for day scholars?", history)
	assert.Contains(t, expanded, "what is the hostel fee")
	assert.Contains(t, expanded, "the hostel fee is 5000 per semester")
	assert.Contains(t, expanded, "\n\nCurrent question: and for day scholars?")
}

func TestExpandQueryKeepsOnlyLastExchange(t *testing.T) {
	history := []*types.Message{
		{Role: types.USER_ROLE_USER, Content: "question-0"},
		{Role: types.USER_ROLE_ASSISTANT, Content: "answer-0"},
		{Role: types.USER_ROLE_SYSTEM, Content: "system-note"},
		{Role: types.USER_ROLE_USER, Content: "question-1"},
		{Role: types.USER_ROLE_ASSISTANT, Content: "answer-1"},
	}

	expanded := ExpandQueryWithContext("follow up", history)
	assert.NotContains(t, expanded, "question-0")
	assert.NotContains(t, expanded, "answer-0")
	assert.NotContains(t, expanded, "system-note")
	assert.Contains(t, expanded, "question-1")
	assert.Contains(t, expanded, "answer-1")
	assert.Contains(t, expanded, "\n\nCurrent question: follow up")
}

func TestExpandQueryTruncatesLongTurns(t *testing.T) {
	long := strings.Repeat("x", types.SOURCE_EXCERPT_LIMIT*2)
	history := []*types.Message{{Role: types.USER_ROLE_USER, Content: long}}

	expanded := ExpandQueryWithContext("q", history)
	assert.NotContains(t, expanded, long)
	assert.Contains(t, expanded, strings.Repeat("x", types.SOURCE_EXCERPT_LIMIT))
}

func TestBuildSourcesCapsAndLabels(t *testing.T) {
	var fragments []types.ScoredFragment
	for i := 0; i < types.MAX_RESPONSE_SOURCES+2; i++ {
		fragments = append(fragments, types.ScoredFragment{ID: fmt.Sprintf("frag-%d", i), Content: "content", Score: 0.9})
	}

	sources := buildSources(fragments)
	require.Len(t, sources, types.MAX_RESPONSE_SOURCES)
	// a fragment with no source falls back to the FAQ label
	assert.Equal(t, "FAQ", sources[0].Title)
}

func TestBuildSourcesOriginPreference(t *testing.T) {
	sources := buildSources([]types.ScoredFragment{
		{ID: "f1", FAQID: "faq-1", DocumentID: "doc-1", Content: "a"},
		{ID: "f2", DocumentID: "doc-2", Content: "b"},
		{ID: "f3", Content: "c"},
	})

	require.Len(t, sources, 3)
	assert.Equal(t, "faq-1", sources[0].OriginID)
	assert.Equal(t, "doc-2", sources[1].OriginID)
	assert.Equal(t, "f3", sources[2].OriginID)
}

func TestBuildSourcesTruncatesExcerpt(t *testing.T) {
	long := strings.Repeat("y", types.SOURCE_EXCERPT_LIMIT+50)
	sources := buildSources([]types.ScoredFragment{
		{ID: "f1", Source: "prospectus.pdf", Content: long, Score: 0.7},
	})

	require.Len(t, sources, 1)
	assert.Equal(t, "prospectus.pdf", sources[0].Title)
	assert.Equal(t, strings.Repeat("y", types.SOURCE_EXCERPT_LIMIT), sources[0].ContentExcerpt)
	assert.Equal(t, 0.7, sources[0].Score)
}

type markingTranslator struct{}

func (markingTranslator) Translate(ctx context.Context, text, sourceName, targetName string) (string, error) {
	return "[" + targetName + "] " + text, nil
}

func TestLocalizeOutboundTranslatesAnswerAndSuggestions(t *testing.T) {
	tr := translate.New(markingTranslator{})

	response, suggestions := localizeOutbound(context.Background(), tr, "hi", "The fee deadline is July 15.", []string{
		"What are the scholarship options available?",
		"What is the last date for fee payment?",
	})

	assert.Equal(t, "[Hindi] The fee deadline is July 15.", response)
	require.Len(t, suggestions, 2)
	assert.Equal(t, "[Hindi] What are the scholarship options available?", suggestions[0])
	assert.Equal(t, "[Hindi] What is the last date for fee payment?", suggestions[1])
}

func TestLocalizeOutboundKeepsWorkingLanguage(t *testing.T) {
	tr := translate.New(markingTranslator{})

	response, suggestions := localizeOutbound(context.Background(), tr, "en", "answer", []string{"follow up?"})
	assert.Equal(t, "answer", response)
	assert.Equal(t, []string{"follow up?"}, suggestions)
}

func TestTurnLanguageFollowsDetectionWithoutPreference(t *testing.T) {
	tr := translate.New(markingTranslator{})

	processed := tr.ProcessQuery(context.Background(), "फीस कब जमा करनी है", "")
	assert.Equal(t, "hi", processed.DetectedLanguage)
	assert.Equal(t, "hi", processed.ResponseLanguage)

	response, _ := localizeOutbound(context.Background(), tr, processed.ResponseLanguage, "The fee deadline is July 15.", nil)
	assert.Equal(t, "[Hindi] The fee deadline is July 15.", response)
}
