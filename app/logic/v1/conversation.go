package v1

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/campus-sathi/campus-sathi/app/core"
	"github.com/campus-sathi/campus-sathi/pkg/ai"
	"github.com/campus-sathi/campus-sathi/pkg/cache"
	pkgerrors "github.com/campus-sathi/campus-sathi/pkg/errors"
	"github.com/campus-sathi/campus-sathi/pkg/i18n"
	"github.com/campus-sathi/campus-sathi/pkg/translate"
	"github.com/campus-sathi/campus-sathi/pkg/types"
	"github.com/campus-sathi/campus-sathi/pkg/utils"
)

var localizer = i18n.NewLocalizer(lo.Keys(i18n.ALLOW_LANG)...)

type ConversationLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewConversationLogic(ctx context.Context, core *core.Core) *ConversationLogic {
	return &ConversationLogic{
		ctx:  ctx,
		core: core,
	}
}

// ProcessMessage runs one full conversation turn: session resolution, inbound
// normalization, retrieval, generation, outbound localization and atomic
// persistence of both turns. Provider failures degrade inside the pipeline;
// only invalid input and a busy session surface as errors.
func (l *ConversationLogic) ProcessMessage(req types.TurnRequest) (*types.TurnResult, error) {
	message := strings.TrimSpace(req.Message)
	if utf8.RuneCountInString(message) < types.MESSAGE_MIN_LENGTH {
		return nil, pkgerrors.New("ConversationLogic.ProcessMessage", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}
	if utf8.RuneCountInString(message) > types.MESSAGE_MAX_LENGTH {
		return nil, pkgerrors.New("ConversationLogic.ProcessMessage", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusBadRequest)
	}

	sessionLogic := NewSessionLogic(l.ctx, l.core)
	session, err := sessionLogic.GetOrCreate(req.SessionToken, req.Platform, req.ExternalUserID, req.PreferredLanguage)
	if err != nil {
		return nil, err
	}

	locked, err := cache.TryLockTurn(l.ctx, l.core.Cache(), session.ID)
	if err != nil {
		return nil, pkgerrors.New("ConversationLogic.ProcessMessage.Lock", i18n.ERROR_INTERNAL, err)
	}
	if !locked {
		return nil, pkgerrors.New("ConversationLogic.ProcessMessage.Lock", i18n.ERROR_TOO_MANY_REQUESTS, nil).Code(http.StatusTooManyRequests)
	}
	defer func() {
		if err := cache.UnlockTurn(l.ctx, l.core.Cache(), session.ID); err != nil {
			slog.Error("failed to release turn lock", slog.String("session", session.ID), slog.Any("error", err))
		}
	}()

	result, err := l.runTurn(session, message, req.PreferredLanguage)
	if err != nil {
		slog.Error("turn failed, answering with apology",
			slog.String("session", session.ID), slog.Any("error", err))
		return l.apologyResult(session), nil
	}
	return result, nil
}

func (l *ConversationLogic) runTurn(session *types.Session, message, preferredLanguage string) (*types.TurnResult, error) {
	translator := l.core.Srv().AI().Translator()

	// The caller's explicit preference wins, otherwise the turn follows the
	// detected language; the session record tracks the latest resolution.
	timer := l.core.Metrics().TurnStageTimer("translate")
	processed := translator.ProcessQuery(l.ctx, message, preferredLanguage)
	timer.ObserveDuration()

	sessionLogic := NewSessionLogic(l.ctx, l.core)
	history, err := sessionLogic.RecentHistory(session.ID)
	if err != nil {
		return nil, err
	}

	timer = l.core.Metrics().TurnStageTimer("retrieve")
	fragments, err := NewKnowledgeLogic(l.ctx, l.core).Search(processed.WorkingText, history)
	timer.ObserveDuration()
	if err != nil {
		// retrieval failure degrades to an evidence-free answer
		slog.Warn("retrieval failed, generating without evidence", slog.Any("error", err))
		fragments = nil
	}

	intent := ai.DetectIntent(processed.WorkingText)

	timer = l.core.Metrics().TurnStageTimer("generate")
	generated := l.core.Srv().AI().Generator().GenerateResponse(l.ctx, processed.WorkingText, fragments, history, types.LanguageName(processed.ResponseLanguage))
	timer.ObserveDuration()

	timer = l.core.Metrics().TurnStageTimer("localize")
	response, suggestions := localizeOutbound(l.ctx, translator, processed.ResponseLanguage, generated.Response, generated.SuggestedQuestions)
	timer.ObserveDuration()

	sources := buildSources(fragments)

	userMsg := &types.Message{
		ID:        utils.GenUniqIDStr(),
		SessionID: session.ID,
		Role:      types.USER_ROLE_USER,
		Content:   processed.WorkingText,
		Intent:    intent,
	}
	if processed.DetectedLanguage != types.WORKING_LANGUAGE {
		userMsg.OriginalContent = message
		userMsg.OriginalLanguage = processed.DetectedLanguage
	}

	// history stays in the working language so later prompts and retrieval
	// context compose cleanly; the localized text only leaves in the result
	assistantMsg := &types.Message{
		ID:         utils.GenUniqIDStr(),
		SessionID:  session.ID,
		Role:       types.USER_ROLE_ASSISTANT,
		Content:    generated.Response,
		Intent:     intent,
		Confidence: generated.Confidence,
		Sources:    sources,
	}

	sessionContext := session.Context
	next := types.SessionContext{
		LastIntent:     intent,
		LastConfidence: generated.Confidence,
	}
	if intent != ai.INTENT_GENERAL {
		next.LastTopic = intent
	}
	sessionContext.Merge(next)

	err = l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		if err := l.core.Store().MessageStore().Create(ctx, userMsg); err != nil {
			return err
		}
		if err := l.core.Store().MessageStore().Create(ctx, assistantMsg); err != nil {
			return err
		}
		if err := l.core.Store().SessionStore().UpdateContext(ctx, session.ID, sessionContext); err != nil {
			return err
		}
		if processed.ResponseLanguage != session.Language {
			if err := l.core.Store().SessionStore().UpdateLanguage(ctx, session.ID, processed.ResponseLanguage); err != nil {
				return err
			}
		}
		return l.core.Store().SessionStore().UpdateLatestAccessTime(ctx, session.ID)
	})
	if err != nil {
		return nil, pkgerrors.New("ConversationLogic.runTurn.Transaction", i18n.ERROR_INTERNAL, err)
	}

	return &types.TurnResult{
		Response:           response,
		SessionToken:       session.ID,
		DetectedLanguage:   processed.DetectedLanguage,
		ResponseLanguage:   processed.ResponseLanguage,
		Intent:             intent,
		Confidence:         generated.Confidence,
		Sources:            sources,
		NeedsEscalation:    generated.NeedsEscalation,
		SuggestedQuestions: suggestions,
	}, nil
}

// localizeOutbound renders the answer and the follow-up suggestions in the
// response language. Template answers and the canned suggestion tables are
// working-language artifacts; generated answers get the same pass so one
// degraded translation never leaks mixed-language output.
func localizeOutbound(ctx context.Context, translator *translate.Translator, lang, response string, suggestions []string) (string, []string) {
	if lang == types.WORKING_LANGUAGE {
		return response, suggestions
	}
	return translator.FromWorking(ctx, response, lang).Text, localizeSuggestions(ctx, translator, lang, suggestions)
}

func localizeSuggestions(ctx context.Context, translator *translate.Translator, lang string, suggestions []string) []string {
	return lo.Map(suggestions, func(question string, _ int) string {
		return translator.FromWorking(ctx, question, lang).Text
	})
}

// apologyResult is the terminal degradation: the turn could not be completed
// at all, so the user gets a localized apology and the case is flagged for a
// human. Nothing is persisted for the failed turn.
func (l *ConversationLogic) apologyResult(session *types.Session) *types.TurnResult {
	lang := session.Language
	apology := localizer.Get(lang, i18n.MESSAGE_APOLOGY)

	return &types.TurnResult{
		Response:         apology,
		SessionToken:     session.ID,
		DetectedLanguage: lang,
		ResponseLanguage: lang,
		Intent:           ai.INTENT_GENERAL,
		Confidence:       0,
		Sources:          []types.SourceRef{},
		NeedsEscalation:  true,
	}
}

// WelcomeMessage greets a (possibly brand new) session in its language.
func (l *ConversationLogic) WelcomeMessage(req types.TurnRequest) (*types.TurnResult, error) {
	session, err := NewSessionLogic(l.ctx, l.core).GetOrCreate(req.SessionToken, req.Platform, req.ExternalUserID, req.PreferredLanguage)
	if err != nil {
		return nil, err
	}

	welcome := localizer.Get(session.Language, i18n.MESSAGE_WELCOME)
	suggestions := ai.SuggestQuestions("")
	if session.Language != types.WORKING_LANGUAGE {
		translator := l.core.Srv().AI().Translator()
		if !i18n.ALLOW_LANG[session.Language] {
			welcome = translator.FromWorking(l.ctx, welcome, session.Language).Text
		}
		suggestions = localizeSuggestions(l.ctx, translator, session.Language, suggestions)
	}

	return &types.TurnResult{
		Response:           welcome,
		SessionToken:       session.ID,
		DetectedLanguage:   session.Language,
		ResponseLanguage:   session.Language,
		Confidence:         100,
		Sources:            []types.SourceRef{},
		SuggestedQuestions: suggestions,
	}, nil
}

func buildSources(fragments []types.ScoredFragment) types.MessageSources {
	sources := make(types.MessageSources, 0, types.MAX_RESPONSE_SOURCES)
	for i, fragment := range fragments {
		if i >= types.MAX_RESPONSE_SOURCES {
			break
		}

		title := fragment.Source
		if title == "" {
			title = "FAQ"
		}

		originID := fragment.FAQID
		if originID == "" {
			originID = fragment.DocumentID
		}
		if originID == "" {
			originID = fragment.ID
		}

		sources = append(sources, types.SourceRef{
			Title:          title,
			ContentExcerpt: utils.TruncateRunes(fragment.Content, types.SOURCE_EXCERPT_LIMIT),
			Score:          fragment.Score,
			OriginID:       originID,
		})
	}
	return sources
}
