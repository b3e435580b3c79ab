// Package log provides centralized logging for viewfmt.
//
// The formatting packages never log; the command line tool, the config
// loader and the file watcher take named loggers from here.
package log

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger = zap.NewNop().Sugar()
	level  = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	mu     sync.Mutex
)

// Options configures the global logger.
type Options struct {
	// Verbosity raises the level: 0 logs warnings, 1 info, 2 or more debug.
	Verbosity int
	// JSON selects structured JSON output instead of console lines.
	JSON bool
	// Output defaults to stderr.
	Output io.Writer
}

// LevelFor maps a -v count to a log level.
func LevelFor(verbosity int) zapcore.Level {
	switch {
	case verbosity <= 0:
		return zapcore.WarnLevel
	case verbosity == 1:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// Init replaces the global logger. Until it is called all logging is
// discarded.
func Init(opts Options) {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	var enc zapcore.Encoder
	if opts.JSON {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		enc = zapcore.NewConsoleEncoder(cfg)
	}

	mu.Lock()
	defer mu.Unlock()
	level.SetLevel(LevelFor(opts.Verbosity))
	logger = zap.New(zapcore.NewCore(enc, zapcore.AddSync(out), level)).Sugar()
}

// L returns the global logger.
func L() *zap.SugaredLogger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Named returns a child logger for one part of the tool: fmt, watch, config.
func Named(name string) *zap.SugaredLogger {
	return L().Named(name)
}

// Debugf writes a debug message to the global logger.
func Debugf(format string, args ...any) {
	L().Debugf(format, args...)
}

// Infof writes an info message to the global logger.
func Infof(format string, args ...any) {
	L().Infof(format, args...)
}

// Warnf writes a warning to the global logger.
func Warnf(format string, args ...any) {
	L().Warnf(format, args...)
}

// Sync flushes buffered log entries.
func Sync() {
	_ = L().Sync()
}
