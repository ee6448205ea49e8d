package store

import (
	"context"

	"github.com/pgvector/pgvector-go"

	"github.com/campus-sathi/campus-sathi/pkg/types"
)

type SessionStore interface {
	Create(ctx context.Context, data types.Session) error
	Get(ctx context.Context, id string) (*types.Session, error)
	UpdateLatestAccessTime(ctx context.Context, id string) error
	UpdateLanguage(ctx context.Context, id, language string) error
	UpdateContext(ctx context.Context, id string, sessionContext types.SessionContext) error
	SetInactive(ctx context.Context, id string) error
	SweepExpired(ctx context.Context, lastActiveBefore int64) (int64, error)
	CountActive(ctx context.Context) (int64, error)
}

type MessageStore interface {
	Create(ctx context.Context, data *types.Message) error
	ListRecent(ctx context.Context, sessionID string, limit uint64) ([]*types.Message, error)
}

type UserStore interface {
	Create(ctx context.Context, data types.User) error
	GetByExternalID(ctx context.Context, platform, externalID string) (*types.User, error)
}

type FragmentStore interface {
	BatchCreate(ctx context.Context, datas []types.Fragment) error
	Search(ctx context.Context, embedding pgvector.Vector, filter types.FragmentFilter, limit uint64) ([]types.ScoredFragment, error)
	DeleteByFilter(ctx context.Context, filter types.FragmentFilter) (int64, error)
	Count(ctx context.Context) (int64, error)
}
