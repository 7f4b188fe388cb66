package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"wayfarer/cmd/fx/account_fx"
	"wayfarer/cmd/fx/config_fx"
	"wayfarer/cmd/fx/controllers_fx"
	"wayfarer/cmd/fx/db_fx"
	"wayfarer/cmd/fx/expense_fx"
	"wayfarer/cmd/fx/memcache_fx"
	"wayfarer/cmd/fx/plan_fx"
	"wayfarer/cmd/fx/speech_fx"
	"wayfarer/internal/config"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		plan_fx.Module,
		expense_fx.Module,
		speech_fx.Module,
		controllers_fx.Module,

		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("starting HTTP server", zap.String("addr", srv.Addr), zap.String("environment", cfg.Environment))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
