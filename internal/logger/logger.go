package logger

import (
	"github.com/nicolassnider/TKD-Hub-API-sub000/internal/config"

	"go.uber.org/zap"
)

// NewLogger builds the application logger. Production gets the JSON encoder,
// anything else the human-readable development config.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.Environment == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	// Enable Caller to get Function Name
	zapConfig.EncoderConfig.FunctionKey = "func"

	return zapConfig.Build(zap.AddCaller())
}
