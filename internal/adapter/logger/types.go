// internal/adapter/logger/types.go
package logger

import "go.uber.org/zap/zapcore"

type ErrorInfo struct {
	Msg   string `json:"msg"`
	Stack string `json:"stack"`
}

func (e ErrorInfo) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("msg", e.Msg)
	enc.AddString("stack", e.Stack)
	return nil
}
