package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pgvector/pgvector-go"

	"github.com/campus-sathi/campus-sathi/pkg/register"
	"github.com/campus-sathi/campus-sathi/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.FragmentStore = NewFragmentStore(provider)
	})
}

type FragmentStore struct {
	CommonFields
}

func NewFragmentStore(provider SqlProviderAchieve) *FragmentStore {
	repo := &FragmentStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_FRAGMENT)
	repo.SetAllColumns("id", "content", "embedding", "source", "category", "faq_id", "document_id",
		"original_length", "created_at", "updated_at")
	return repo
}

func (s *FragmentStore) BatchCreate(ctx context.Context, datas []types.Fragment) error {
	if len(datas) == 0 {
		return nil
	}

	query := sq.Insert(s.GetTable()).
		Columns("id", "content", "embedding", "source", "category", "faq_id", "document_id",
			"original_length", "created_at", "updated_at")

	for _, data := range datas {
		if data.CreatedAt == 0 {
			data.CreatedAt = time.Now().Unix()
		}
		if data.UpdatedAt == 0 {
			data.UpdatedAt = time.Now().Unix()
		}
		query = query.Values(data.ID, data.Content, data.Embedding, data.Source, data.Category,
			data.FAQID, data.DocumentID, data.OriginalLength, data.CreatedAt, data.UpdatedAt)
	}

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	_, err = s.GetMaster(ctx).Exec(queryString, args...)
	if err != nil {
		return err
	}
	return nil
}

// Search ranks fragments by cosine similarity against the query embedding.
// Score is 1 - cosine distance, higher is closer.
func (s *FragmentStore) Search(ctx context.Context, embedding pgvector.Vector, filter types.FragmentFilter, limit uint64) ([]types.ScoredFragment, error) {
	scoreColumn, vectorArgs, _ := sq.Expr("1 - (embedding <=> ?) as score", embedding).ToSql()
	query := sq.Select("id", "content", "source", "category", "faq_id", "document_id", scoreColumn).
		From(s.GetTable()).
		OrderBy("score DESC").
		Limit(limit)

	filter.Apply(&query)

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	args = append(vectorArgs, args...)

	var res []types.ScoredFragment
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *FragmentStore) DeleteByFilter(ctx context.Context, filter types.FragmentFilter) (int64, error) {
	if filter.Empty() {
		return 0, nil
	}

	query := sq.Delete(s.GetTable())
	filter.ApplyDelete(&query)

	queryString, args, err := query.ToSql()
	if err != nil {
		return 0, ErrorSqlBuild(err)
	}

	result, err := s.GetMaster(ctx).Exec(queryString, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *FragmentStore) Count(ctx context.Context) (int64, error) {
	query := sq.Select("COUNT(*)").From(s.GetTable())

	queryString, args, err := query.ToSql()
	if err != nil {
		return 0, ErrorSqlBuild(err)
	}

	var total int64
	if err = s.GetReplica(ctx).Get(&total, queryString, args...); err != nil {
		return 0, err
	}
	return total, nil
}
