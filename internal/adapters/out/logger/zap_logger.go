package logger

import (
	"sort"
	"time"

	"github.com/suchimauz/clinic-appointments-gateway/internal/config"
	"github.com/suchimauz/clinic-appointments-gateway/internal/core/ports/out"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ZapLogger struct {
	logger        *zap.Logger
	defaultFields out.LogFields
	module        string
}

// Локально пишем цветной консольный вывод, в остальных окружениях JSON
func NewZapLogger(cfg *config.Config) (*ZapLogger, error) {
	var zapCfg zap.Config
	if cfg.IsLocal() {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapCfg = zap.NewProductionConfig()
		zapCfg.EncoderConfig.TimeKey = "time"
	}

	zapCfg.Level = zap.NewAtomicLevelAt(parseLevel(cfg.App.LogLevel))
	zapCfg.DisableCaller = true
	zapCfg.EncoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.In(config.TimeZone).Format("2006-01-02 15:04:05.000"))
	}

	zapLogger, err := zapCfg.Build(zap.Fields(zap.String("version", cfg.App.Version)))
	if err != nil {
		return nil, err
	}

	return NewFromZap(zapLogger), nil
}

func NewFromZap(zapLogger *zap.Logger) *ZapLogger {
	return &ZapLogger{
		logger:        zapLogger,
		defaultFields: make(out.LogFields),
	}
}

func NewNopLogger() *ZapLogger {
	return NewFromZap(zap.NewNop())
}

func (l *ZapLogger) WithFields(fields out.LogFields) out.LoggerPort {
	newLogger := &ZapLogger{
		logger:        l.logger,
		defaultFields: make(out.LogFields, len(l.defaultFields)+len(fields)),
		module:        l.module,
	}

	for k, v := range l.defaultFields {
		newLogger.defaultFields[k] = v
	}
	for k, v := range fields {
		newLogger.defaultFields[k] = v
	}

	return newLogger
}

func (l *ZapLogger) WithModule(module string) out.LoggerPort {
	return &ZapLogger{
		logger:        l.logger,
		defaultFields: l.defaultFields,
		module:        module,
	}
}

func (l *ZapLogger) Debug(event string, fields out.LogFields) {
	l.log(zapcore.DebugLevel, event, fields)
}

func (l *ZapLogger) Info(event string, fields out.LogFields) {
	l.log(zapcore.InfoLevel, event, fields)
}

func (l *ZapLogger) Warn(event string, fields out.LogFields) {
	l.log(zapcore.WarnLevel, event, fields)
}

func (l *ZapLogger) Error(event string, fields out.LogFields) {
	l.log(zapcore.ErrorLevel, event, fields)
}

func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}

func (l *ZapLogger) log(level zapcore.Level, event string, fields out.LogFields) {
	ce := l.logger.Check(level, event)
	if ce == nil {
		return
	}

	module := l.module
	if module == "" {
		module = "unknown"
	}

	merged := make(out.LogFields, len(l.defaultFields)+len(fields))
	for k, v := range l.defaultFields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	zapFields := make([]zap.Field, 0, len(keys)+1)
	zapFields = append(zapFields, zap.String("module", module))
	for _, k := range keys {
		zapFields = append(zapFields, zap.Any(k, merged[k]))
	}

	ce.Write(zapFields...)
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
