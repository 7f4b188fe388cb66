package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	mem "wayfarer/pkg/memcache"
)

const (
	limiterTTL    = 10 * time.Minute
	sweepInterval = time.Minute
)

var Module = fx.Provide(provideLimiterStore)

// provideLimiterStore also runs a janitor that drops idle limiters until shutdown.
func provideLimiterStore(lc fx.Lifecycle, log *zap.Logger) mem.LimiterStore {
	store := mem.NewLimiters(limiterTTL)
	stop := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ticker := time.NewTicker(sweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						if n := store.Sweep(); n > 0 {
							log.Debug("swept idle rate limiters", zap.Int("count", n))
						}
					case <-stop:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(stop)
			return nil
		},
	})
	return store
}
