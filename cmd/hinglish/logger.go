package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger creates the command's logger writing to w. verbose switches to
// the development config at debug level.
func newLogger(level string, verbose bool, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zapConfig := zap.NewProductionEncoderConfig()
	if verbose {
		lvl = zapcore.DebugLevel
		zapConfig = zap.NewDevelopmentEncoderConfig()
	}
	var encoder zapcore.Encoder
	if verbose {
		encoder = zapcore.NewConsoleEncoder(zapConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(zapConfig)
	}
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zap.NewAtomicLevelAt(lvl))
	return zap.New(core), nil
}
