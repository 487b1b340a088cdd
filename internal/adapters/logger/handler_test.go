package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/sandeepsanjusplr/buck/internal/adapters/logger"
	"github.com/stretchr/testify/assert"
)

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	l := slog.New(logger.NewPrettyHandler(&buf, nil)).
		With("cell", "lib").
		WithGroup("parser").
		With("syntax", "hcl")

	l.Info("parsed", "path", "/src/my lib/BUCK")
	assert.Equal(t, "parsed cell=lib parser.syntax=hcl parser.path=\"/src/my lib/BUCK\"\n", buf.String())
}

func TestPrettyHandler_Level(t *testing.T) {
	var buf bytes.Buffer
	h := logger.NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})
	l := slog.New(h)

	l.Info("skipped")
	l.Error("failed")
	assert.Equal(t, "✗ failed\n", buf.String())
}
