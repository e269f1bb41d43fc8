package repository

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(ctx context.Context) error { return p.err }

func TestPingReportsFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	err := ping(context.Background(), fakePinger{err: errors.New("connection refused")}, time.Second, logger)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "database ping failed")
	assert.NotContains(t, buf.String(), "ping successful")
}

func TestPingLogsSuccessOnlyAfterPing(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	require.NoError(t, ping(context.Background(), fakePinger{}, time.Second, logger))
	assert.Contains(t, buf.String(), "database ping successful")
}

func TestHealthCheckNilPool(t *testing.T) {
	assert.NoError(t, HealthCheck(context.Background(), nil, time.Second, slog.Default()))
}
