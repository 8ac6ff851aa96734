package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/florist/internal/adapters/logger"
)

func TestPrettyHandler_Handle_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		msg        string
		goldenName string
	}{
		{name: "info level", level: slog.LevelInfo, msg: "bouquet ready", goldenName: "handler_info"},
		{name: "warn level", level: slog.LevelWarn, msg: "catalog has no flowers", goldenName: "handler_warn"},
		{name: "error level", level: slog.LevelError, msg: "catalog unreadable", goldenName: "handler_error"},
		{name: "debug level filtered", level: slog.LevelDebug, msg: "scanning token", goldenName: "handler_debug_filtered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			lg := slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
			lg.Log(t.Context(), tt.level, tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_AttrsAndGroups(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	var h slog.Handler = logger.NewPrettyHandler(buf, nil)
	h = h.WithAttrs([]slog.Attr{slog.String("catalog", "shop.yaml")})
	h = h.WithGroup("flower")
	h = h.WithGroup("stem")

	slog.New(h).Info("filtered", "min", 35, "max", 45)

	assert.Equal(t, "filtered catalog=shop.yaml flower.stem.min=35 flower.stem.max=45\n", buf.String())
}

func TestPrettyHandler_Enabled(t *testing.T) {
	h := logger.NewPrettyHandler(nil, &slog.HandlerOptions{Level: slog.LevelWarn})

	assert.False(t, h.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, h.Enabled(t.Context(), slog.LevelWarn))
	assert.True(t, h.Enabled(t.Context(), slog.LevelError))
}

func TestPrettyHandler_Colours(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR_FORCE", "1")

	buf := &bytes.Buffer{}
	slog.New(logger.NewPrettyHandler(buf, nil)).Error("catalog unreadable")

	assert.Contains(t, buf.String(), "catalog unreadable")
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestPrettyHandler_MultilineNotPadded(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	slog.New(logger.NewPrettyHandler(buf, nil)).Warn("first\nsecond line")

	assert.Equal(t, "! first\nsecond line\n", buf.String())
}
