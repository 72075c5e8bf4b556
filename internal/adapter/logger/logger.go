package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Info(action, message, requestID string, details map[string]interface{})
	Debug(action, message, requestID string, details map[string]interface{})
	Error(action, message, requestID string, details map[string]interface{}, err error)
}

type zapLogger struct {
	z *zap.Logger
}

// New returns an info-level JSON logger writing to stdout
func New(service string) Logger {
	l, _ := NewWithLevel(service, "info")
	return l
}

// NewWithLevel accepts debug, info, warn or error
func NewWithLevel(service, level string) (Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return New(service), fmt.Errorf("parse log level: %w", err)
	}
	return newZap(service, lvl, zapcore.Lock(os.Stdout)), nil
}

// NewWithWriter is NewWithLevel writing to out, for processes that own stdout
func NewWithWriter(service, level string, out io.Writer) (Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	return newZap(service, lvl, zapcore.AddSync(out)), nil
}

// NewNop discards everything
func NewNop() Logger {
	return &zapLogger{z: zap.NewNop()}
}

func newZap(service string, level zapcore.Level, out zapcore.WriteSyncer) *zapLogger {
	hostname, _ := os.Hostname()

	encCfg := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     utcTime,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), out, level)

	return &zapLogger{
		z: zap.New(core).With(
			zap.String("service", service),
			zap.String("hostname", hostname),
		),
	}
}

func utcTime(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format(time.RFC3339Nano))
}

func (l *zapLogger) Info(action, message, requestID string, details map[string]interface{}) {
	l.z.Info(message, fields(action, requestID, details, nil)...)
}

func (l *zapLogger) Debug(action, message, requestID string, details map[string]interface{}) {
	l.z.Debug(message, fields(action, requestID, details, nil)...)
}

func (l *zapLogger) Error(action, message, requestID string, details map[string]interface{}, err error) {
	l.z.Error(message, fields(action, requestID, details, err)...)
}

func fields(action, requestID string, details map[string]interface{}, err error) []zap.Field {
	fs := []zap.Field{
		zap.String("request_id", requestID),
		zap.String("action", action),
	}
	if len(details) > 0 {
		fs = append(fs, zap.Any("details", details))
	}
	if err != nil {
		fs = append(fs, zap.Object("error", ErrorInfo{Msg: err.Error(), Stack: fmt.Sprintf("%+v", err)}))
	}
	return fs
}
