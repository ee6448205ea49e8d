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
		provider.stores.SessionStore = NewSessionStore(provider)
	})
}

type SessionStore struct {
	CommonFields
}

func NewSessionStore(provider SqlProviderAchieve) *SessionStore {
	repo := &SessionStore{}
	repo.SetProvider(provider)
	repo.SetTable(types.TABLE_CHAT_SESSION)
	repo.SetAllColumns("id", "user_id", "platform", "language", "context", "is_active", "created_at", "latest_access_time")
	return repo
}

func (s *SessionStore) Create(ctx context.Context, data types.Session) error {
	if data.CreatedAt == 0 {
		data.CreatedAt = time.Now().Unix()
	}

	if data.LatestAccessTime == 0 {
		data.LatestAccessTime = time.Now().Unix()
	}

	query := sq.Insert(s.GetTable()).
		Columns("id", "user_id", "platform", "language", "context", "is_active", "created_at", "latest_access_time").
		Values(data.ID, data.UserID, data.Platform, data.Language, data.Context, data.IsActive, data.CreatedAt, data.LatestAccessTime)

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

func (s *SessionStore) Get(ctx context.Context, id string) (*types.Session, error) {
	query := sq.Select(s.GetAllColumns()...).From(s.GetTable()).Where(sq.Eq{"id": id})

	queryString, args, err := query.ToSql()
	if err != nil {
		return nil, ErrorSqlBuild(err)
	}

	var res types.Session
	if err = s.GetReplica(ctx).Get(&res, queryString, args...); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *SessionStore) UpdateLatestAccessTime(ctx context.Context, id string) error {
	query := sq.Update(s.GetTable()).Where(sq.Eq{"id": id}).Set("latest_access_time", time.Now().Unix())

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	if _, err = s.GetMaster(ctx).Exec(queryString, args...); err != nil {
		return err
	}
	return nil
}

func (s *SessionStore) UpdateLanguage(ctx context.Context, id, language string) error {
	query := sq.Update(s.GetTable()).Where(sq.Eq{"id": id}).Set("language", language)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	if _, err = s.GetMaster(ctx).Exec(queryString, args...); err != nil {
		return err
	}
	return nil
}

func (s *SessionStore) UpdateContext(ctx context.Context, id string, sessionContext types.SessionContext) error {
	query := sq.Update(s.GetTable()).Where(sq.Eq{"id": id}).Set("context", sessionContext)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	if _, err = s.GetMaster(ctx).Exec(queryString, args...); err != nil {
		return err
	}
	return nil
}

func (s *SessionStore) SetInactive(ctx context.Context, id string) error {
	query := sq.Update(s.GetTable()).Where(sq.Eq{"id": id}).Set("is_active", false)

	queryString, args, err := query.ToSql()
	if err != nil {
		return ErrorSqlBuild(err)
	}

	if _, err = s.GetMaster(ctx).Exec(queryString, args...); err != nil {
		return err
	}
	return nil
}

// SweepExpired deactivates sessions idle since before the given unix time and
// reports how many were touched.
func (s *SessionStore) SweepExpired(ctx context.Context, lastActiveBefore int64) (int64, error) {
	query := sq.Update(s.GetTable()).
		Where(sq.Eq{"is_active": true}).
		Where(sq.Lt{"latest_access_time": lastActiveBefore}).
		Set("is_active", false)

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

func (s *SessionStore) CountActive(ctx context.Context) (int64, error) {
	query := sq.Select("COUNT(*)").From(s.GetTable()).Where(sq.Eq{"is_active": true})

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
