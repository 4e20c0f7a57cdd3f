package logger

import (
	"log/slog"
	"os"
	"sync"
)

var (
	mu  sync.RWMutex
	log *slog.Logger
)

// Init configures the global logger for env.
//
//	development  text, debug level, with source
//	test         text, warn level
//	otherwise    JSON, info level
func Init(env string) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	var handler slog.Handler
	switch env {
	case "development":
		opts.Level = slog.LevelDebug
		opts.AddSource = true
		handler = slog.NewTextHandler(os.Stdout, opts)
	case "test":
		opts.Level = slog.LevelWarn
		handler = slog.NewTextHandler(os.Stdout, opts)
	default:
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	l := slog.New(handler).With("service", "jobtracker")

	mu.Lock()
	log = l
	mu.Unlock()
	slog.SetDefault(l)
}

// current returns the global logger, initialising a development logger on first use.
func current() *slog.Logger {
	mu.RLock()
	l := log
	mu.RUnlock()
	if l != nil {
		return l
	}
	Init("development")
	return current()
}

func Info(msg string, args ...any) {
	current().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	current().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	current().Error(msg, args...)
}

func With(args ...any) *slog.Logger {
	return current().With(args...)
}
