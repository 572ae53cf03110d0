package server

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Volpestyle/paystub-extractor/internal/common"
)

func TestConnectDBSQLiteMode(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	entc, pool, err := ConnectDB(ctx, common.DatabaseConfig{
		DSN: "file:servertest?mode=memory&cache=shared",
	}, logger)
	require.NoError(t, err)
	require.NotNil(t, entc)
	assert.Nil(t, pool, "sqlite mode has no pgx pool")

	// The schema is created on connect, so queries work straight away.
	n, err := entc.PaystubFile.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.NoError(t, PingDB(ctx, pool, logger, time.Second))
	CloseDB(entc, pool, logger)
}
