package ai

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-sathi/campus-sathi/pkg/types"
)

func TestBuildContextWithoutFragments(t *testing.T) {
	assert.Equal(t, "No specific information found in the knowledge base.", BuildContext(nil))
}

func TestBuildContextNumbersSources(t *testing.T) {
	fragments := []types.ScoredFragment{
		{Content: "first", Source: "prospectus.pdf"},
		{Content: "second"},
	}

	ctx := BuildContext(fragments)
	assert.Contains(t, ctx, "[Source 1: prospectus.pdf]\nfirst")
	assert.Contains(t, ctx, "[Source 2: FAQ]\nsecond")
}

func TestBuildContextBoundsFragmentLength(t *testing.T) {
	long := strings.Repeat("x", types.FRAGMENT_CONTENT_LIMIT*2)
	ctx := BuildContext([]types.ScoredFragment{{Content: long, Source: "doc"}})

	assert.NotContains(t, ctx, long)
	assert.Contains(t, ctx, strings.Repeat("x", types.FRAGMENT_CONTENT_LIMIT))
}

func TestBuildContextCapsFragmentCount(t *testing.T) {
	var fragments []types.ScoredFragment
	for i := 0; i < types.MAX_PROMPT_FRAGMENTS+3; i++ {
		fragments = append(fragments, types.ScoredFragment{Content: fmt.Sprintf("doc-%d", i)})
	}

	ctx := BuildContext(fragments)
	assert.Contains(t, ctx, fmt.Sprintf("[Source %d:", types.MAX_PROMPT_FRAGMENTS))
	assert.NotContains(t, ctx, fmt.Sprintf("[Source %d:", types.MAX_PROMPT_FRAGMENTS+1))
}

func TestBuildMessagesShape(t *testing.T) {
	history := []*types.Message{
		{Role: types.USER_ROLE_USER, Content: "old question"},
		{Role: types.USER_ROLE_ASSISTANT, Content: "old answer"},
		{Role: types.USER_ROLE_SYSTEM, Content: "must be dropped"},
	}

	messages := BuildMessages("when is the exam?", nil, history, "Hindi")

	require.GreaterOrEqual(t, len(messages), 2)
	assert.Equal(t, "system", messages[0].Role)
	assert.Contains(t, messages[0].Content, "Hindi")

	last := messages[len(messages)-1]
	assert.Equal(t, "user", last.Role)
	assert.Contains(t, last.Content, "Student's question: when is the exam?")

	for _, m := range messages {
		assert.NotContains(t, m.Content, "must be dropped")
	}
}

func TestBuildMessagesCapsHistory(t *testing.T) {
	var history []*types.Message
	for i := 0; i < types.MAX_HISTORY_TURNS*2; i++ {
		history = append(history, &types.Message{Role: types.USER_ROLE_USER, Content: fmt.Sprintf("turn-%d", i)})
	}

	messages := BuildMessages("q", nil, history, "English")

	// system + capped history + final user message
	assert.LessOrEqual(t, len(messages), types.MAX_HISTORY_TURNS+2)
	// the oldest turns are the ones dropped
	for _, m := range messages {
		assert.NotEqual(t, "turn-0", m.Content)
	}
}

func TestNumTokensGrowsWithContent(t *testing.T) {
	short := NumTokens([]MessageContext{{Role: "user", Content: "hi"}})
	long := NumTokens([]MessageContext{{Role: "user", Content: strings.Repeat("hello world ", 200)}})

	assert.Greater(t, long, short)
}
