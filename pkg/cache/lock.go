package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/campus-sathi/campus-sathi/pkg/types"
)

const turnLockTTL = time.Minute

func turnLockKey(sessionToken string) string {
	return fmt.Sprintf("sathi:chat:turn-lock:%s", sessionToken)
}

// TryLockTurn takes the per-session turn lock. Turns within one session are
// serialized; a second concurrent turn is rejected instead of racing on
// history and context updates.
func TryLockTurn(ctx context.Context, c types.Cache, sessionToken string) (bool, error) {
	return c.SetNX(ctx, turnLockKey(sessionToken), "1", turnLockTTL)
}

func UnlockTurn(ctx context.Context, c types.Cache, sessionToken string) error {
	return c.Del(ctx, turnLockKey(sessionToken))
}

// NopCache satisfies types.Cache when no redis is configured; locks always
// succeed, which matches the caller-serialized deployment mode.
type NopCache struct{}

func (NopCache) Get(ctx context.Context, key string) (string, error) {
	return "", nil
}

func (NopCache) SetEx(ctx context.Context, key, value string, expiresAt time.Duration) error {
	return nil
}

func (NopCache) SetNX(ctx context.Context, key, value string, expiresAt time.Duration) (bool, error) {
	return true, nil
}

func (NopCache) Del(ctx context.Context, key string) error {
	return nil
}
