//go:build unit

package logctx_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"booking-ops-portal/internal/pkg/logctx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	buf.Reset()
	return entry
}

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(logctx.NewHandler(slog.NewJSONHandler(&buf, nil))).With("component", "decision")

	t.Run("adds request id from context", func(t *testing.T) {
		ctx := logctx.WithRequestID(context.Background(), "req-1")
		logger.InfoContext(ctx, "decided")

		entry := decodeLine(t, &buf)
		assert.Equal(t, "req-1", entry["request_id"])
		assert.Equal(t, "decision", entry["component"])
	})

	t.Run("survives a detached context", func(t *testing.T) {
		parent, cancel := context.WithCancel(logctx.WithRequestID(context.Background(), "req-2"))
		cancel()
		logger.InfoContext(context.WithoutCancel(parent), "dispatched")

		assert.Equal(t, "req-2", decodeLine(t, &buf)["request_id"])
	})

	t.Run("no request id", func(t *testing.T) {
		logger.Info("startup")

		_, ok := decodeLine(t, &buf)["request_id"]
		assert.False(t, ok)
	})
}
