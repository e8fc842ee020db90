package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestLogger(level slog.Level) (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newTestLogger(slog.LevelDebug)
	ctx := context.Background()

	log.Debug(ctx, "session restored", "user_id", "u1")
	log.Info(ctx, "logged in", "user_id", "u1")
	log.Warn(ctx, "login failed", "kind", "rejected")
	log.Error(ctx, "request failed", "status", 500)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 4)

	for i, want := range []string{
		`level=DEBUG msg="session restored" user_id=u1`,
		`level=INFO msg="logged in" user_id=u1`,
		`level=WARN msg="login failed" kind=rejected`,
		`level=ERROR msg="request failed" status=500`,
	} {
		assert.Contains(t, lines[i], want)
	}
}

func TestSlogLogger_SkipsBelowLevel(t *testing.T) {
	log, buf := newTestLogger(slog.LevelWarn)
	ctx := context.Background()

	log.Debug(ctx, "hidden")
	log.Info(ctx, "hidden too")
	log.Warn(ctx, "shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
}

func TestSlogLogger_With(t *testing.T) {
	log, buf := newTestLogger(slog.LevelDebug)
	ctx := context.Background()

	child := log.With("component", "api")
	child.With("request_id", "r-1").Info(ctx, "request done", "status", 200)
	log.Info(ctx, "plain")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "component=api request_id=r-1 status=200")
	assert.NotContains(t, lines[1], "component=")
}
