// Package logging wires up the process-wide structured logger.
package logging

import (
	"go.uber.org/zap"
)

var Logger *zap.SugaredLogger

// Init builds the global logger. Debug mode switches to the
// development config with DEBUG-level output; otherwise INFO and above
// in console encoding.
func Init(debug bool) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	cfg.Encoding = "console"
	logger, err := cfg.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	Logger = logger.Sugar()
}

func init() {
	// Packages may log before cmd configures the real logger.
	Logger = zap.NewNop().Sugar()
}
