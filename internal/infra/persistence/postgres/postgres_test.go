package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolMonitor_Sample(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	current := sql.DBStats{}
	monitor := &poolMonitor{logger: logger, stats: func() sql.DBStats { return current }}

	monitor.sample(context.Background())
	assert.Empty(t, buf.String())

	current = sql.DBStats{WaitCount: 2, WaitDuration: 200 * time.Millisecond}
	monitor.sample(context.Background())
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"waitCountDelta":2`)

	buf.Reset()
	monitor.sample(context.Background())
	assert.Empty(t, buf.String())
}
