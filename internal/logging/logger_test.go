package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithKeywordAttachesField(t *testing.T) {
	var buf bytes.Buffer
	old := Logger
	defer func() { Logger = old }()
	Logger = slog.New(slog.NewTextHandler(&buf, nil))

	WithKeyword("tesla").Info("streaming started")

	assert.Contains(t, buf.String(), "keyword=tesla")
	assert.Contains(t, buf.String(), "streaming started")
}

func TestWithErrorAttachesField(t *testing.T) {
	var buf bytes.Buffer
	old := Logger
	defer func() { Logger = old }()
	Logger = slog.New(slog.NewTextHandler(&buf, nil))

	WithError(errors.New("feed down")).Error("fetch failed")

	assert.Contains(t, buf.String(), "error=")
	assert.Contains(t, buf.String(), "feed down")
}

func TestHelpersWorkBeforeInitLogger(t *testing.T) {
	require.NotNil(t, Logger)
	assert.NotNil(t, WithKeyword("tesla"))
	assert.NotNil(t, WithError(errors.New("boom")))
}

func TestInitLoggerSetsLevel(t *testing.T) {
	old := Logger
	defer func() {
		Logger = old
		slog.SetDefault(old)
	}()

	InitLogger("debug", "json")
	assert.True(t, Logger.Enabled(context.Background(), slog.LevelDebug))
	assert.Equal(t, Logger, slog.Default())

	InitLogger("bogus", "text")
	assert.False(t, Logger.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, Logger.Enabled(context.Background(), slog.LevelInfo))
}
