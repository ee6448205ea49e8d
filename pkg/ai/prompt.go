package ai

import (
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"
	"github.com/samber/lo"
	openai "github.com/sashabaranov/go-openai"

	"github.com/campus-sathi/campus-sathi/pkg/types"
	"github.com/campus-sathi/campus-sathi/pkg/utils"
)

const SYSTEM_PROMPT = `You are a helpful and friendly Campus Assistant for a technical education institution.

Your role is to:
1. Answer student queries about admissions, fees, scholarships, timetables, and campus facilities
2. Provide information from official college documents and FAQs
3. Be polite, concise, and accurate
4. If you don't know something or the information isn't in the provided context, say so honestly
5. Suggest contacting the relevant office for queries you cannot answer

Guidelines:
- Always be respectful and patient
- Keep responses concise but complete
- Use simple language that students can easily understand
- If a query is unclear, ask for clarification
- For urgent matters, recommend visiting the office in person
- Never make up information - stick to what's provided in the context

You are responding in: %s
`

const CONTEXT_PROMPT = `Based on the following relevant information from college documents and FAQs:

%s

Please answer the student's question. If the context doesn't contain relevant information, say that you don't have that specific information and suggest they contact the appropriate office.`

// Rough prompt budget; history is dropped oldest-first past this.
const promptTokenBudget = 3000

// BuildContext renders the evidence block from the highest-scored fragments,
// each bounded so a single long chunk cannot crowd out the rest.
func BuildContext(fragments []types.ScoredFragment) string {
	if len(fragments) == 0 {
		return "No specific information found in the knowledge base."
	}

	var parts []string
	for i, doc := range fragments {
		if i >= types.MAX_PROMPT_FRAGMENTS {
			break
		}
		source := doc.Source
		if source == "" {
			source = "FAQ"
		}
		parts = append(parts, fmt.Sprintf("[Source %d: %s]\n%s", i+1, source, utils.TruncateRunes(doc.Content, types.FRAGMENT_CONTENT_LIMIT)))
	}
	return strings.Join(parts, "\n\n")
}

// BuildMessages assembles the chat request: persona preamble, recent history,
// then evidence and the current query.
func BuildMessages(query string, fragments []types.ScoredFragment, history []*types.Message, languageName string) []MessageContext {
	messages := []MessageContext{{
		Role:    openai.ChatMessageRoleSystem,
		Content: fmt.Sprintf(SYSTEM_PROMPT, languageName),
	}}

	turns := lo.Filter(history, func(item *types.Message, _ int) bool {
		return item.Role == types.USER_ROLE_USER || item.Role == types.USER_ROLE_ASSISTANT
	})
	if len(turns) > types.MAX_HISTORY_TURNS {
		turns = turns[len(turns)-types.MAX_HISTORY_TURNS:]
	}

	historyMsgs := lo.Map(turns, func(item *types.Message, _ int) MessageContext {
		role := openai.ChatMessageRoleUser
		if item.Role == types.USER_ROLE_ASSISTANT {
			role = openai.ChatMessageRoleAssistant
		}
		return MessageContext{Role: role, Content: item.Content}
	})

	final := MessageContext{
		Role:    openai.ChatMessageRoleUser,
		Content: fmt.Sprintf(CONTEXT_PROMPT, BuildContext(fragments)) + "\n\nStudent's question: " + query,
	}

	// Trim oldest history while the request is over budget. The system
	// preamble and the current query always survive.
	for len(historyMsgs) > 0 && NumTokens(append(append([]MessageContext{messages[0]}, historyMsgs...), final)) > promptTokenBudget {
		historyMsgs = historyMsgs[1:]
	}

	messages = append(messages, historyMsgs...)
	return append(messages, final)
}

// NumTokens estimates the token count of a chat request. Falls back to a
// character heuristic if the encoding cannot be loaded.
func NumTokens(messages []MessageContext) int {
	enc, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		total := 0
		for _, m := range messages {
			total += len(m.Content) / 4
		}
		return total
	}

	total := 3 // every reply is primed with <|start|>assistant<|message|>
	for _, m := range messages {
		total += 3
		total += len(enc.Encode(m.Content, nil, nil))
		total += len(enc.Encode(m.Role, nil, nil))
	}
	return total
}
