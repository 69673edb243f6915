package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/isomatch/logger"
)

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"none", "debug", "info", "warn", "error"} {
		for _, format := range []string{"json", "text"} {
			l, err := logger.NewLogger(format, level)
			require.NoError(t, err, "%s/%s", format, level)
			require.NotNil(t, l)
		}
	}

	_, err := logger.NewLogger("json", "verbose")
	require.ErrorContains(t, err, "unknown log level")
	_, err = logger.NewLogger("xml", "info")
	require.ErrorContains(t, err, "unknown log format")

	require.Panics(t, func() { logger.MustNewLogger("json", "loud") })
}

func TestZapLoggerForwards(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := logger.New(zap.New(core))
	ctx := context.Background()

	l.Debug("d")
	l.InfoWithContext(ctx, "i", zap.Int("targets", 3))
	l.Warn("w")
	l.ErrorWithContext(ctx, "e")
	l.With(zap.String("query", "q"))
	l.DebugWithContext(ctx, "after-with")

	entries := logs.All()
	require.Len(t, entries, 5)
	require.Equal(t, "i", entries[1].Message)
	require.Equal(t, int64(3), entries[1].ContextMap()["targets"])
	require.Equal(t, zapcore.WarnLevel, entries[2].Level)
	require.Equal(t, "q", entries[4].ContextMap()["query"])
}

func TestNoop(t *testing.T) {
	var l logger.Logger = logger.NewNoopLogger()
	l.Info("discarded")
	l.WarnWithContext(context.Background(), "discarded")
	require.NotNil(t, logger.New(nil).Logger)
}
