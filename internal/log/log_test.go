package log_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/ghettovoice/urlcanon/internal/log"
	"github.com/ghettovoice/urlcanon/parse"
)

func TestWrap_Component(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(log.Wrap(slog.NewTextHandler(&buf, nil)))
	logger.Info("host", "host", parse.MakeRange(7, 18), "port", parse.Absent())

	out := buf.String()
	for _, want := range []string{"host.begin=7", "host.len=11", "port=absent"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output = %q, want it to contain %q", out, want)
		}
	}
}

func TestNoop(t *testing.T) {
	t.Parallel()

	if log.Noop.Enabled(t.Context(), slog.LevelError) {
		t.Error("log.Noop.Enabled(LevelError) = true, want false")
	}
}

func TestStringValue(t *testing.T) {
	t.Parallel()

	if got, want := log.StringValue([]byte("abc")).LogValue().String(), "abc"; got != want {
		t.Errorf("log.StringValue([]byte(\"abc\")) = %q, want %q", got, want)
	}
}
