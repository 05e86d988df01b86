package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a zap sugared logger so call sites stay decoupled
// from the zap configuration.
type Logger struct {
	*zap.SugaredLogger
}

func NewLogger(verbose bool) *Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return &Logger{zap.NewNop().Sugar()}
	}

	return &Logger{logger.Sugar()}
}

// NewNop returns a logger that discards everything. Used by tests and
// by callers that construct a Processor without a real logger.
func NewNop() *Logger {
	return &Logger{zap.NewNop().Sugar()}
}
