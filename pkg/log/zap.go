package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // development or production
	Encoding     string // console or json
	ColorEnabled bool
}

type zapLogger struct {
	s *zap.SugaredLogger
}

// Init builds the process-wide logger from config.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Mode == "production" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.Encoding != "" {
		zapCfg.Encoding = cfg.Encoding
	}
	if cfg.ColorEnabled && zapCfg.Encoding == "console" {
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		logger = zap.NewNop()
	}

	return &zapLogger{s: logger.Sugar()}
}

func (l *zapLogger) Debug(_ context.Context, args ...any) { l.s.Debug(args...) }
func (l *zapLogger) Debugf(_ context.Context, format string, args ...any) {
	l.s.Debugf(format, args...)
}

func (l *zapLogger) Info(_ context.Context, args ...any) { l.s.Info(args...) }
func (l *zapLogger) Infof(_ context.Context, format string, args ...any) {
	l.s.Infof(format, args...)
}

func (l *zapLogger) Warn(_ context.Context, args ...any) { l.s.Warn(args...) }
func (l *zapLogger) Warnf(_ context.Context, format string, args ...any) {
	l.s.Warnf(format, args...)
}

func (l *zapLogger) Error(_ context.Context, args ...any) { l.s.Error(args...) }
func (l *zapLogger) Errorf(_ context.Context, format string, args ...any) {
	l.s.Errorf(format, args...)
}
