package types

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/pgvector/pgvector-go"
)

// Fragment is one indexed unit of retrievable knowledge content. Fragments
// are produced by the ingestion side (FAQ entries, document chunks) and
// consumed by the retrieval pipeline.
type Fragment struct {
	ID             string          `json:"id" db:"id"`
	Content        string          `json:"content" db:"content"`
	Category       string          `json:"category" db:"category"`
	Source         string          `json:"source" db:"source"`
	FAQID          string          `json:"faq_id" db:"faq_id"`
	DocumentID     string          `json:"document_id" db:"document_id"`
	Embedding      pgvector.Vector `json:"-" db:"embedding"`
	OriginalLength int             `json:"original_length" db:"original_length"`
	CreatedAt      int64           `json:"created_at" db:"created_at"`
	UpdatedAt      int64           `json:"updated_at" db:"updated_at"`
}

// FragmentInput is the pre-embedding shape handed over by ingestion.
type FragmentInput struct {
	Content    string `json:"content"`
	Category   string `json:"category"`
	Source     string `json:"source"`
	FAQID      string `json:"faq_id,omitempty"`
	DocumentID string `json:"document_id,omitempty"`
}

// ScoredFragment is one retrieval hit; Score is cosine relevance in [0,1].
type ScoredFragment struct {
	ID         string  `json:"id" db:"id"`
	Content    string  `json:"content" db:"content"`
	Category   string  `json:"category" db:"category"`
	Source     string  `json:"source" db:"source"`
	FAQID      string  `json:"faq_id" db:"faq_id"`
	DocumentID string  `json:"document_id" db:"document_id"`
	Score      float64 `json:"score" db:"score"`
}

type FragmentFilter struct {
	Category   string
	Source     string
	FAQID      string
	DocumentID string
}

func (opts FragmentFilter) Apply(query *sq.SelectBuilder) {
	if opts.Category != "" {
		*query = query.Where(sq.Eq{"category": opts.Category})
	}
	if opts.Source != "" {
		*query = query.Where(sq.Eq{"source": opts.Source})
	}
	if opts.FAQID != "" {
		*query = query.Where(sq.Eq{"faq_id": opts.FAQID})
	}
	if opts.DocumentID != "" {
		*query = query.Where(sq.Eq{"document_id": opts.DocumentID})
	}
}

func (opts FragmentFilter) ApplyDelete(query *sq.DeleteBuilder) {
	if opts.Category != "" {
		*query = query.Where(sq.Eq{"category": opts.Category})
	}
	if opts.Source != "" {
		*query = query.Where(sq.Eq{"source": opts.Source})
	}
	if opts.FAQID != "" {
		*query = query.Where(sq.Eq{"faq_id": opts.FAQID})
	}
	if opts.DocumentID != "" {
		*query = query.Where(sq.Eq{"document_id": opts.DocumentID})
	}
}

func (opts FragmentFilter) Empty() bool {
	return opts == FragmentFilter{}
}

type IndexStats struct {
	Fragments int64  `json:"fragments"`
	Index     string `json:"index"`
}
