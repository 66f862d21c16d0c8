// Package logging builds the zap loggers used by the console programs.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns the process logger. It writes JSON to stderr so it never
// interleaves with the menu on stdout.
func New(level string, verbose bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.DisableStacktrace = !verbose

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// OperationLog is an append-only text log of user operations, one line per
// entry: "[2006-01-02 15:04:05] [INFO] message".
type OperationLog struct {
	*zap.Logger
	file *os.File
}

// OpenOperationLog opens (creating if needed) path for appending.
func OpenOperationLog(path string) (*OperationLog, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open operation log %s: %w", path, err)
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(OperationEncoderConfig()), zapcore.AddSync(f), zapcore.DebugLevel)
	return &OperationLog{Logger: zap.New(core), file: f}, nil
}

// OperationEncoderConfig is the console encoder layout of the operation log.
func OperationEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeTime:       zapcore.TimeEncoderOfLayout("[2006-01-02 15:04:05]"),
		EncodeLevel:      bracketLevelEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}
}

func bracketLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + l.CapitalString() + "]")
}

// Close flushes and closes the underlying file.
func (l *OperationLog) Close() error {
	_ = l.Logger.Sync()
	return l.file.Close()
}
