package types

import (
	"context"
	"time"
)

type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	SetEx(ctx context.Context, key, value string, expiresAt time.Duration) error
	SetNX(ctx context.Context, key, value string, expiresAt time.Duration) (bool, error)
	Del(ctx context.Context, key string) error
}
