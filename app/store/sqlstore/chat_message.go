package sqlstore

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/campus-sathi/campus-sathi/pkg/register"
	"github.com/campus-sathi/campus-sathi/pkg/types"
)

func init() {
	register.RegisterFunc[*Provider](RegisterKey{}, func(provider *Provider) {
		provider.stores.MessageStore = NewMessageStore(provider)
	})
}

type MessageStore struct {
	CommonFields
}

func NewMessageStore(provider SqlProviderAchieve) *MessageStore {
	repo := &MessageStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_CHAT_MESSAGE)
	repo.SetAllColumns("id", "session_id", "role", "content", "original_content", "original_language",
		"intent", "confidence", "sources", "created_at")
	return repo
}

func (s *MessageStore) Create(ctx context.Context, data *types.Message) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}

	query := sq.Insert(s.GetTable()).
		Columns("id", "session_id", "role", "content", "original_content", "original_language",
			"intent", "confidence", "sources", "created_at").
		Values(data.ID, data.SessionID, data.Role, data.Content, data.OriginalContent, data.OriginalLanguage,
			data.Intent, data.Confidence, data.Sources, data.CreatedAt)

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

// ListRecent returns the newest messages of a session, oldest first, so the
// result can be fed straight into a prompt.
func (s *MessageStore) ListRecent(ctx context.Context, sessionID string, limit uint64) ([]*types.Message, error) {
	sub := sq.Select(s.GetAllColumns()...).From(s.GetTable()).
		Where(sq.Eq{"session_id": sessionID}).
		OrderBy("created_at DESC, id DESC").
		Limit(limit)

	subString, args, err := sub.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	queryString := "SELECT * FROM (" + subString + ") AS recent ORDER BY created_at ASC, id ASC"

	var res []*types.Message
	if err = s.GetReplica(ctx).Select(&res, queryString, args...); err != nil {
		return nil, err
	}
	return res, nil
}
