package config_fx

import (
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"wayfarer/internal/config"
	"wayfarer/internal/llm"
	"wayfarer/pkg/logger"
	"wayfarer/pkg/utils"
)

var Module = fx.Provide(
	config.Load, provideLogger, provideTokenIssuer, provideGenerator)

func provideLogger(cfg config.Config) (*zap.Logger, error) {
	return logger.Init(cfg.Log.Level, cfg.Log.Format)
}

func provideTokenIssuer(cfg config.Config) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.AccessTokenTTLMinute)*time.Minute)
}

func provideGenerator(cfg config.Config) *llm.Generator {
	return llm.NewGenerator(llm.Settings{
		Provider: cfg.LLM.Provider,
		Model:    cfg.LLM.Model,
		Endpoint: cfg.LLM.Endpoint,
		APIKey:   cfg.LLM.APIKey,
	})
}
