package speech_fx

import (
	"go.uber.org/fx"

	"wayfarer/internal/config"
	"wayfarer/internal/services"
)

var Module = fx.Provide(provideSpeechService)

func provideSpeechService(cfg config.Config) services.SpeechServiceInterface {
	return services.NewSpeechService(cfg.Speech)
}
