// Package log provides logging utilities.
package log

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/fedhost/target"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(t *target.Target) slog.Value {
		if t == nil {
			return slog.StringValue("<nil>")
		}
		return slog.GroupValue(
			slog.String("scheme", t.Scheme()),
			slog.String("netloc", t.Netloc()),
		)
	}),
	slogformatter.FormatByType(func(req *http.Request) slog.Value {
		if req == nil {
			return slog.StringValue("<nil>")
		}
		return slog.GroupValue(
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.String("host", req.Host),
		)
	}),
)

// NewConsole creates a logger writing human-readable lines to w.
func NewConsole(w io.Writer, lvl slog.Leveler) *slog.Logger {
	return slog.New(newHandler(
		console.NewHandler(w, &console.HandlerOptions{
			AddSource:  true,
			Level:      lvl,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

// NewDev creates a developer logger with pretty-printed attributes.
func NewDev(w io.Writer, lvl slog.Leveler) *slog.Logger {
	return slog.New(newHandler(
		devslog.NewHandler(w, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{
				AddSource: true,
				Level:     lvl,
			},
			SortKeys:   true,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

var defLogger atomic.Pointer[slog.Logger]

func init() {
	defLogger.Store(NewConsole(os.Stderr, slog.LevelInfo))
}

// Default returns the package-wide default logger.
func Default() *slog.Logger { return defLogger.Load() }

// SetDefault replaces the default logger. Nil resets it to [Noop].
func SetDefault(l *slog.Logger) {
	if l == nil {
		l = Noop
	}
	defLogger.Store(l)
}
