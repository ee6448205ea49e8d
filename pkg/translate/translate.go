package translate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/campus-sathi/campus-sathi/pkg/ai"
	"github.com/campus-sathi/campus-sathi/pkg/types"
)

type Outcome int

const (
	// OutcomeIdentity means source and target were the same language.
	OutcomeIdentity Outcome = iota
	OutcomeTranslated
	// OutcomePassThrough means the provider failed and the original text was
	// kept; Reason carries the cause for logs.
	OutcomePassThrough
)

// Result lets callers distinguish "translated" from "pass-through" without
// inspecting logs.
type Result struct {
	Text    string
	Outcome Outcome
	Reason  string
}

// Provider performs one directional translation.
type Provider interface {
	Translate(ctx context.Context, text, sourceName, targetName string) (string, error)
}

// Translator converts between user languages and the working language.
// Stateless apart from the provider handle.
type Translator struct {
	provider Provider
}

func New(provider Provider) *Translator {
	return &Translator{provider: provider}
}

// ToWorking normalizes text into the working language. Provider failure
// degrades to pass-through, never blocks the pipeline.
func (t *Translator) ToWorking(ctx context.Context, text, sourceLanguage string) Result {
	return t.translate(ctx, text, sourceLanguage, types.WORKING_LANGUAGE)
}

// FromWorking localizes working-language text for the user.
func (t *Translator) FromWorking(ctx context.Context, text, targetLanguage string) Result {
	return t.translate(ctx, text, types.WORKING_LANGUAGE, targetLanguage)
}

func (t *Translator) translate(ctx context.Context, text, source, target string) Result {
	if source == target || types.LanguageName(source) == types.LanguageName(target) {
		return Result{Text: text, Outcome: OutcomeIdentity}
	}

	if t.provider == nil {
		return Result{Text: text, Outcome: OutcomePassThrough, Reason: "no translation provider configured"}
	}

	translated, err := t.provider.Translate(ctx, text, types.LanguageName(source), types.LanguageName(target))
	if err != nil {
		slog.Warn("translation failed, passing text through",
			slog.String("source", source), slog.String("target", target), slog.Any("error", err))
		return Result{Text: text, Outcome: OutcomePassThrough, Reason: err.Error()}
	}
	return Result{Text: translated, Outcome: OutcomeTranslated}
}

// ProcessedQuery is the outcome of inbound normalization for one turn.
type ProcessedQuery struct {
	WorkingText      string
	DetectedLanguage string
	ResponseLanguage string
	Outcome          Outcome
}

// ProcessQuery detects the message language, normalizes the text to the
// working language and resolves the response language: the caller's
// preference wins over detection.
func (t *Translator) ProcessQuery(ctx context.Context, text, preferredLanguage string) ProcessedQuery {
	detected := DetectLanguage(text)

	responseLang := preferredLanguage
	if responseLang == "" {
		responseLang = detected
	}

	if detected == types.WORKING_LANGUAGE {
		return ProcessedQuery{
			WorkingText:      text,
			DetectedLanguage: detected,
			ResponseLanguage: responseLang,
			Outcome:          OutcomeIdentity,
		}
	}

	res := t.ToWorking(ctx, text, detected)
	return ProcessedQuery{
		WorkingText:      res.Text,
		DetectedLanguage: detected,
		ResponseLanguage: responseLang,
		Outcome:          res.Outcome,
	}
}

const translatePrompt = `You are a translation engine. Translate the user's text from %s to %s.
Reply with the translated text only, no explanations, no quotes, keep the original formatting and line breaks.`

// LLMProvider translates through the configured chat driver.
type LLMProvider struct {
	driver ai.Query
}

func NewLLMProvider(driver ai.Query) *LLMProvider {
	return &LLMProvider{driver: driver}
}

func (p *LLMProvider) Translate(ctx context.Context, text, sourceName, targetName string) (string, error) {
	answer, err := p.driver.Query(ctx, []ai.MessageContext{
		{Role: openai.ChatMessageRoleSystem, Content: fmt.Sprintf(translatePrompt, sourceName, targetName)},
		{Role: openai.ChatMessageRoleUser, Content: text},
	})
	if err != nil {
		return "", err
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", fmt.Errorf("empty translation for %s -> %s", sourceName, targetName)
	}
	return answer, nil
}
