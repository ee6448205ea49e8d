package ai

import (
	"context"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"

	"github.com/campus-sathi/campus-sathi/pkg/types"
)

type ModelName struct {
	ChatModel      string
	EmbeddingModel string
}

type MessageContext = openai.ChatCompletionMessage

// Query is the text-generation side of a provider driver.
type Query interface {
	Query(ctx context.Context, messages []MessageContext) (string, error)
}

// Embedding is the vectorization side of a provider driver.
type Embedding interface {
	EmbeddingForQuery(ctx context.Context, content []string) ([][]float32, error)
	EmbeddingForDocument(ctx context.Context, title string, content []string) ([][]float32, error)
}

type Driver interface {
	Query
	Embedding
	Name() string
}

// GenerateResult is the structured outcome of one generation call. Confidence
// is derived from retrieval evidence, never from the model's own wording.
type GenerateResult struct {
	Response           string   `json:"response"`
	Confidence         int      `json:"confidence"`
	NeedsEscalation    bool     `json:"needs_escalation"`
	SuggestedQuestions []string `json:"suggested_questions"`
	SourcesUsed        int      `json:"sources_used"`
	Fallback           bool     `json:"fallback"`
}

// Generator produces answers from retrieved evidence. A nil driver switches
// it into template fallback mode.
type Generator struct {
	driver Query
}

func NewGenerator(driver Query) *Generator {
	return &Generator{driver: driver}
}

// GenerateResponse runs one RAG generation: prompt from the top fragments and
// recent history, then the deterministic confidence/escalation/suggestion
// layer on top of the model output. Provider failures degrade to the
// fallback template; the conversation never fails here.
func (g *Generator) GenerateResponse(ctx context.Context, query string, fragments []types.ScoredFragment, history []*types.Message, languageName string) GenerateResult {
	if g.driver == nil {
		return FallbackResponse(query, fragments)
	}

	messages := BuildMessages(query, fragments, history, languageName)

	answer, err := g.driver.Query(ctx, messages)
	if err != nil {
		slog.Error("generation failed, falling back to template answer", slog.Any("error", err))
		return FallbackResponse(query, fragments)
	}

	confidence := Confidence(fragments)

	return GenerateResult{
		Response:           answer,
		Confidence:         confidence,
		NeedsEscalation:    NeedsEscalation(query, answer, confidence),
		SuggestedQuestions: SuggestQuestions(query),
		SourcesUsed:        len(fragments),
	}
}
