package internal

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logFile *os.File
	logPath string

	setupOnce   sync.Once
	multiWriter io.Writer

	handlerMu sync.RWMutex
	sink      slog.Handler

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   *slog.LevelVar
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
func SetLogPath(path string) {
	logPath = path
}

// SetLogHandler routes all framework and application records to h instead of the
// default JSON output. Levels are still filtered by the logger's LevelVar.
func SetLogHandler(h slog.Handler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	sink = h
}

func setup() {
	setupOnce.Do(func() {
		if logPath == "" {
			multiWriter = os.Stdout
			return
		}

		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			multiWriter = os.Stdout
			return
		}

		var err error
		logFile, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			// Can't open log file, fall back to console-only
			multiWriter = os.Stdout
			return
		}

		multiWriter = io.MultiWriter(os.Stdout, logFile)
	})
}

// switchHandler forwards to the handler installed with SetLogHandler, or to the
// JSON fallback when none is set.
type switchHandler struct {
	level    *slog.LevelVar
	fallback slog.Handler
	attrs    []slog.Attr
	group    string
}

func (h *switchHandler) target() slog.Handler {
	handlerMu.RLock()
	custom := sink
	handlerMu.RUnlock()
	if custom == nil {
		return h.fallback
	}
	if h.group != "" {
		custom = custom.WithGroup(h.group)
	}
	if len(h.attrs) > 0 {
		custom = custom.WithAttrs(h.attrs)
	}
	return custom
}

func (h *switchHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *switchHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.target().Handle(ctx, r)
}

func (h *switchHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &switchHandler{
		level:    h.level,
		fallback: h.fallback.WithAttrs(attrs),
		attrs:    append(append([]slog.Attr{}, h.attrs...), attrs...),
		group:    h.group,
	}
}

func (h *switchHandler) WithGroup(name string) slog.Handler {
	return &switchHandler{
		level:    h.level,
		fallback: h.fallback.WithGroup(name),
		attrs:    h.attrs,
		group:    name,
	}
}

func newLogger(level *slog.LevelVar) *slog.Logger {
	setup()

	fallback := slog.NewJSONHandler(multiWriter, &slog.HandlerOptions{
		Level:     level,
		AddSource: false,
	})
	return slog.New(&switchHandler{level: level, fallback: fallback})
}

func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}
		logger = newLogger(levelVar)
	})
	return logger
}

func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		internalLevelVar = &slog.LevelVar{}
		internalLevelVar.Set(slog.LevelError)
		internalLogger = newLogger(internalLevelVar)
	})
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	GetInternalLogger()
	internalLevelVar.Set(level)
}

// ParseLevel maps a level name to a slog.Level. Unknown names map to info.
func ParseLevel(rawLevel string) slog.Level {
	switch strings.ToLower(rawLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func SetRawLogLevel(rawLevel string) {
	SetLogLevel(ParseLevel(rawLevel))
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
