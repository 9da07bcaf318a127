// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger wires the process-wide zap SugaredLogger. Pipeline stages
// log through logger.S; data output never goes through it.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// S is the package-level logger. It is a no-op until Init runs, so library
// code and tests can log unconditionally.
var S = zap.NewNop().Sugar()

// Init builds the process logger at the given level ("debug", "info", "warn",
// "error"; anything else means info) and installs it as S. Output is
// line-oriented console encoding on stderr, keeping stdout free for data.
func Init(levelName string) *zap.SugaredLogger {
	var level zapcore.Level
	switch levelName {
	case "debug":
		level = zapcore.DebugLevel
	case "warn", "warning":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		level,
	)

	S = zap.New(core).Sugar()
	return S
}

// Close flushes buffered entries. Flush failures are swallowed; logging never
// blocks or fails a run.
func Close() {
	_ = S.Sync()
}
