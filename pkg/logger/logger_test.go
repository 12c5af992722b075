package logger_test

import (
	"context"
	"mca/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	for _, env := range []string{logger.DevelopmentEnvironment, logger.ProductionEnvironment} {
		t.Run(env, func(t *testing.T) {
			require.NotPanics(t, func() {
				logger.Setup(env)
			})
			require.NotNil(t, logger.Get(context.Background()))
		})
	}
}

func TestGetFallsBackToDefault(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	ctx := context.Background()
	require.NotNil(t, logger.Get(ctx))

	custom, _ := zap.NewDevelopment()
	require.Equal(t, custom, logger.Get(logger.WithLogger(ctx, custom)))
}

func TestWithFieldsCarriesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("funding_id", "f-1"))
	logger.Info(ctx, "stats refreshed", zap.Int("paybacks", 3))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "stats refreshed", entries[0].Message)
	fields := entries[0].ContextMap()
	require.Equal(t, "f-1", fields["funding_id"])
	require.EqualValues(t, 3, fields["paybacks"])
}

func TestSlogBridge(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Slog(ctx).Info("job completed", "kind", "stats_refresh")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "job completed", entries[0].Message)
	require.Equal(t, "stats_refresh", entries[0].ContextMap()["kind"])
}

func TestIsDebug(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	ctx := context.Background()
	require.True(t, logger.IsDebug(ctx))

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	infoLogger, _ := cfg.Build()
	require.False(t, logger.IsDebug(logger.WithLogger(ctx, infoLogger)))
}

func TestLoggingFunctions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Debug(ctx, "debug")
	logger.Info(ctx, "info")
	logger.Warn(ctx, "warn")
	logger.Error(ctx, "error")

	require.Equal(t, 4, logs.Len())
}
