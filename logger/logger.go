package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Config selects the level and output format.
type Config struct {
	Level  string
	Format string
	// Output defaults to stdout
	Output io.Writer
}

var (
	mu            sync.RWMutex
	defaultLogger = slog.New(slog.NewTextHandler(os.Stdout, nil))
)

// Init installs the service logger and makes it the slog default.
func Init(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	l := slog.New(handler.WithAttrs([]slog.Attr{
		slog.String("service", "todolists"),
	}))

	mu.Lock()
	defaultLogger = l
	mu.Unlock()

	slog.SetDefault(l)
	return l
}

// Get returns the service logger.
func Get() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// Module returns a logger tagged with a component name.
func Module(name string) *slog.Logger {
	return Get().With(slog.String("module", name))
}

type ctxKey struct{}

// WithContext stores l in ctx.
func WithContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the request logger, or the service logger when ctx has none.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return Get()
}

// ParseLevel maps a level name to slog; unknown names are info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
