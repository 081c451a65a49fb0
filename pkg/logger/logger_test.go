package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	return entry
}

func TestContextFieldsAreAttached(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "shop", Output: &buf, Format: "json"})

	ctx := logg.WithRequestID(context.Background(), "req-1")
	ctx = logg.WithCartID(ctx, 3)
	logg.Info(ctx, "cart.created")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "shop", entry["service"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.EqualValues(t, 3, entry["cart_id"])
	assert.Equal(t, "cart.created", entry["message"])
}

func TestErrorIncludesStack(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "shop", Output: &buf, Format: "json"})

	logg.Error(context.Background(), "request.error", errors.New("boom"))

	entry := decodeLine(t, &buf)
	assert.Equal(t, "boom", entry["error"])
	assert.NotEmpty(t, entry["stack"])
}

func TestLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "shop", Output: &buf, Format: "json", Level: "info"})

	logg.Debug(context.Background(), "hidden")
	assert.Zero(t, buf.Len())
}

func TestDefaultLevelIsInfo(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "shop", Output: &buf, Format: "json"})

	logg.Debug(context.Background(), "hidden")
	assert.Zero(t, buf.Len())

	logg.Info(context.Background(), "shown")
	entry := decodeLine(t, &buf)
	assert.Equal(t, "info", entry["level"])
}

func TestDebugLevelEmitsDebug(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "shop", Output: &buf, Format: "json", Level: "debug"})

	logg.Debug(context.Background(), "request.start")
	entry := decodeLine(t, &buf)
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "request.start", entry["message"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.DebugLevel, ParseLevel(" DEBUG "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("loud"))
}
