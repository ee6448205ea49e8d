package process

import (
	"context"
	"log/slog"
	"time"

	"github.com/campus-sathi/campus-sathi/app/core"
	v1 "github.com/campus-sathi/campus-sathi/app/logic/v1"
	"github.com/campus-sathi/campus-sathi/pkg/register"
	"github.com/campus-sathi/campus-sathi/pkg/safe"
)

func init() {
	register.RegisterFunc[*Process](ProcessKey{}, func(p *Process) {
		if _, err := p.Cron().AddFunc("@every 30m", func() {
			safe.Run(func() {
				sweepExpiredSessions(p.Core())
			})
		}); err != nil {
			panic(err)
		}
	})
}

// sweepExpiredSessions deactivates sessions idle past the timeout. Expired
// sessions are already invisible to reads, the sweep just keeps the active
// set small.
func sweepExpiredSessions(core *core.Core) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	swept, err := v1.NewSessionLogic(ctx, core).SweepExpired()
	if err != nil {
		slog.Error("session sweep failed", slog.Any("error", err))
		return
	}
	if swept > 0 {
		slog.Info("session sweep completed", slog.Int64("swept", swept))
	}
}
