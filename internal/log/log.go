// Package log provides the slog loggers used by the URL packages.
package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/urlcanon/parse"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(c parse.Component) slog.Value {
		if !c.IsValid() {
			return slog.StringValue("absent")
		}
		return slog.GroupValue(
			slog.Int("begin", c.Begin),
			slog.Int("len", c.Len),
		)
	}),
)

// Def is a default console logger.
var Def = slog.New(newHandler(
	console.NewHandler(os.Stderr, &console.HandlerOptions{
		AddSource:  true,
		Level:      slog.LevelDebug,
		TimeFormat: time.RFC3339Nano,
	}),
))

// Dev is a developer logger.
var Dev = slog.New(newHandler(
	devslog.NewHandler(os.Stderr, &devslog.Options{
		HandlerOptions: &slog.HandlerOptions{
			AddSource: true,
			Level:     slog.LevelDebug,
		},
		SortKeys:   true,
		TimeFormat: time.RFC3339Nano,
	}),
))

// Wrap installs the package formatters on top of h.
func Wrap(h slog.Handler) slog.Handler { return newHandler(h) }

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop discards everything.
var Noop = slog.New(noopHandler{})

// Default returns the process default logger.
func Default() *slog.Logger { return slog.Default() }

type stringValue[T ~string | ~[]byte] struct {
	v T
}

func (v stringValue[T]) LogValue() slog.Value {
	return slog.StringValue(string(v.v))
}

// StringValue returns a value logger that formats v as string.
// Useful for byte slices which slog would otherwise print as numbers.
func StringValue[T ~string | ~[]byte](v T) slog.LogValuer { return stringValue[T]{v} }

type fmtValue struct{ v any }

func (v fmtValue) LogValue() slog.Value { return slog.StringValue(fmt.Sprintf("%+v", v.v)) }

// FmtValue returns a value logger that formats v lazily with '%+v'.
func FmtValue(v any) slog.LogValuer { return fmtValue{v} }
