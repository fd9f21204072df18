package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Sugar *zap.SugaredLogger

// InitLogger configures the shared logger with the given level.
// Unknown levels fall back to info.
func InitLogger(level string) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, _ := cfg.Build()
	Sugar = logger.Sugar()
}

func GetLogger() *zap.SugaredLogger {
	if Sugar == nil {
		logger, _ := zap.NewDevelopment()
		Sugar = logger.Sugar()
	}
	return Sugar
}

func Sync() {
	if Sugar != nil {
		Sugar.Sync()
	}
}
