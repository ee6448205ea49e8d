package v1

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/pgvector/pgvector-go"
	"github.com/samber/lo"

	"github.com/campus-sathi/campus-sathi/app/core"
	pkgerrors "github.com/campus-sathi/campus-sathi/pkg/errors"
	"github.com/campus-sathi/campus-sathi/pkg/i18n"
	"github.com/campus-sathi/campus-sathi/pkg/types"
	"github.com/campus-sathi/campus-sathi/pkg/utils"
)

type KnowledgeLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewKnowledgeLogic(ctx context.Context, core *core.Core) *KnowledgeLogic {
	return &KnowledgeLogic{
		ctx:  ctx,
		core: core,
	}
}

// AddFAQ indexes one question/answer pair. Re-adding the same faq id replaces
// the previous fragments, so ingestion can be replayed safely.
func (l *KnowledgeLogic) AddFAQ(faqID, question, answer, category string) error {
	if faqID == "" {
		faqID = utils.GenUniqIDStr()
	}

	content := fmt.Sprintf("Q: %s\nA: %s", question, answer)

	if _, err := l.core.Store().FragmentStore().DeleteByFilter(l.ctx, types.FragmentFilter{FAQID: faqID}); err != nil {
		return pkgerrors.New("KnowledgeLogic.AddFAQ.Delete", i18n.ERROR_INTERNAL, err)
	}

	return l.indexFragments([]types.FragmentInput{{
		Content:  content,
		Category: category,
		Source:   "FAQ",
		FAQID:    faqID,
	}})
}

// AddDocumentChunks indexes pre-chunked document content under one document
// id, replacing whatever that id held before.
func (l *KnowledgeLogic) AddDocumentChunks(documentID, source, category string, chunks []string) error {
	if documentID == "" {
		documentID = utils.GenUniqIDStr()
	}

	chunks = lo.Filter(chunks, func(chunk string, _ int) bool {
		return strings.TrimSpace(chunk) != ""
	})
	if len(chunks) == 0 {
		return pkgerrors.New("KnowledgeLogic.AddDocumentChunks", i18n.ERROR_INVALIDARGUMENT, fmt.Errorf("no content to index")).Code(400)
	}

	if _, err := l.core.Store().FragmentStore().DeleteByFilter(l.ctx, types.FragmentFilter{DocumentID: documentID}); err != nil {
		return pkgerrors.New("KnowledgeLogic.AddDocumentChunks.Delete", i18n.ERROR_INTERNAL, err)
	}

	inputs := lo.Map(chunks, func(chunk string, _ int) types.FragmentInput {
		return types.FragmentInput{
			Content:    chunk,
			Category:   category,
			Source:     source,
			DocumentID: documentID,
		}
	})
	return l.indexFragments(inputs)
}

func (l *KnowledgeLogic) indexFragments(inputs []types.FragmentInput) error {
	embedder := l.core.Srv().AI().Embedder()
	if embedder == nil {
		return pkgerrors.New("KnowledgeLogic.indexFragments", i18n.ERROR_INTERNAL, fmt.Errorf("no embedding provider configured"))
	}

	contents := lo.Map(inputs, func(in types.FragmentInput, _ int) string { return in.Content })

	timer := l.core.Metrics().ProviderRequestTimer("embedding")
	embeddings, err := embedder.EmbeddingForDocument(l.ctx, "", contents)
	timer.ObserveDuration()
	if err != nil {
		l.core.Metrics().ProviderErrorInc("embedding")
		return pkgerrors.New("KnowledgeLogic.indexFragments.Embedding", i18n.ERROR_INTERNAL, err)
	}
	if len(embeddings) != len(inputs) {
		return pkgerrors.New("KnowledgeLogic.indexFragments.Embedding", i18n.ERROR_INTERNAL,
			fmt.Errorf("embedding count %d does not match input count %d", len(embeddings), len(inputs)))
	}

	now := time.Now().Unix()
	fragments := lo.Map(inputs, func(in types.FragmentInput, i int) types.Fragment {
		return types.Fragment{
			ID:             utils.GenUniqIDStr(),
			Content:        in.Content,
			Category:       in.Category,
			Source:         in.Source,
			FAQID:          in.FAQID,
			DocumentID:     in.DocumentID,
			Embedding:      pgvector.NewVector(embeddings[i]),
			OriginalLength: len(in.Content),
			CreatedAt:      now,
			UpdatedAt:      now,
		}
	})

	for _, batch := range lo.Chunk(fragments, types.FRAGMENT_BATCH_SIZE) {
		if err = l.core.Store().FragmentStore().BatchCreate(l.ctx, batch); err != nil {
			return pkgerrors.New("KnowledgeLogic.indexFragments.BatchCreate", i18n.ERROR_INTERNAL, err)
		}
	}
	return nil
}

func (l *KnowledgeLogic) RemoveFAQ(faqID string) (int64, error) {
	return l.remove(types.FragmentFilter{FAQID: faqID})
}

func (l *KnowledgeLogic) RemoveDocument(documentID string) (int64, error) {
	return l.remove(types.FragmentFilter{DocumentID: documentID})
}

func (l *KnowledgeLogic) RemoveSource(source string) (int64, error) {
	return l.remove(types.FragmentFilter{Source: source})
}

func (l *KnowledgeLogic) remove(filter types.FragmentFilter) (int64, error) {
	if filter.Empty() {
		return 0, pkgerrors.New("KnowledgeLogic.remove", i18n.ERROR_INVALIDARGUMENT, fmt.Errorf("empty filter")).Code(400)
	}
	removed, err := l.core.Store().FragmentStore().DeleteByFilter(l.ctx, filter)
	if err != nil {
		return 0, pkgerrors.New("KnowledgeLogic.remove", i18n.ERROR_INTERNAL, err)
	}
	return removed, nil
}

// Stats reports index size; a count failure degrades to zero instead of
// failing the endpoint.
func (l *KnowledgeLogic) Stats() *types.IndexStats {
	total, err := l.core.Store().FragmentStore().Count(l.ctx)
	if err != nil {
		slog.Warn("fragment count failed, reporting zero", slog.Any("error", err))
		total = 0
	}
	return &types.IndexStats{
		Fragments: total,
		Index:     "pgvector",
	}
}

// Search retrieves the most relevant fragments for a working-language query,
// expanded with a short excerpt of the recent conversation so follow-up
// questions keep their subject. Without an embedding provider retrieval
// degrades to no evidence instead of failing the turn.
func (l *KnowledgeLogic) Search(query string, history []*types.Message) ([]types.ScoredFragment, error) {
	embedder := l.core.Srv().AI().Embedder()
	if embedder == nil {
		return nil, nil
	}

	expanded := ExpandQueryWithContext(query, history)

	timer := l.core.Metrics().ProviderRequestTimer("embedding")
	embeddings, err := embedder.EmbeddingForQuery(l.ctx, []string{expanded})
	timer.ObserveDuration()
	if err != nil {
		l.core.Metrics().ProviderErrorInc("embedding")
		return nil, pkgerrors.New("KnowledgeLogic.Search.Embedding", i18n.ERROR_INTERNAL, err)
	}
	if len(embeddings) == 0 {
		return nil, nil
	}

	hits, err := l.core.Store().FragmentStore().Search(l.ctx, pgvector.NewVector(embeddings[0]), types.FragmentFilter{}, types.SEARCH_TOP_K)
	if err != nil {
		return nil, pkgerrors.New("KnowledgeLogic.Search", i18n.ERROR_INTERNAL, err)
	}

	return rankFragments(hits), nil
}

// rankFragments re-asserts descending relevance order and drops every hit
// below the score threshold.
func rankFragments(hits []types.ScoredFragment) []types.ScoredFragment {
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})
	return lo.Filter(hits, func(hit types.ScoredFragment, _ int) bool {
		return hit.Score >= types.SCORE_THRESHOLD
	})
}

// ExpandQueryWithContext prefixes the query with the tail of the conversation
// so pronouns and follow-ups ("and for hostel students?") embed near their
// actual topic. The assistant's last answer is part of the exchange; that is
// usually what a follow-up points back to.
func ExpandQueryWithContext(query string, history []*types.Message) string {
	turns := lo.Filter(history, func(item *types.Message, _ int) bool {
		return item.Role == types.USER_ROLE_USER || item.Role == types.USER_ROLE_ASSISTANT
	})
	if len(turns) == 0 {
		return query
	}
	if len(turns) > types.CONTEXT_EXCERPT_TURNS {
		turns = turns[len(turns)-types.CONTEXT_EXCERPT_TURNS:]
	}

	excerpts := lo.Map(turns, func(item *types.Message, _ int) string {
		return utils.TruncateRunes(item.Content, types.SOURCE_EXCERPT_LIMIT)
	})
	return strings.Join(excerpts, "\n") + "\n\nCurrent question: " + query
}
