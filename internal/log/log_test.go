package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetup_DefaultLevelIsWarn(t *testing.T) {
	previous := slog.Default()
	defer slog.SetDefault(previous)

	var buf bytes.Buffer
	ll := setup(&buf, true, false)

	slog.Debug("hidden debug")
	slog.Info("hidden info")
	slog.Warn("shown warning", "path", "base.jsonc")

	out := buf.String()
	assert.Equal(t, slog.LevelWarn, ll.Level())
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown warning")
	assert.Contains(t, out, "path=base.jsonc")
	assert.NotContains(t, out, "\x1b[", "no colour codes when NoColor is set")
}

func TestSetup_Debug(t *testing.T) {
	previous := slog.Default()
	defer slog.SetDefault(previous)

	var buf bytes.Buffer
	ll := setup(&buf, true, true)

	slog.Debug("parsed document", "kind", "object")

	assert.Equal(t, slog.LevelDebug, ll.Level())
	assert.Contains(t, buf.String(), "parsed document")
	assert.Contains(t, buf.String(), "kind=object")
}
