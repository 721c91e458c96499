package cmd_test

import (
	"context"
	"testing"

	"fulfillment/cmd"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestInitTracing(t *testing.T) {
	t.Run("disabled keeps the no-op provider", func(t *testing.T) {
		before := otel.GetTracerProvider()

		shutdown, err := cmd.InitTracing(context.Background(), "fulfillment-test", false)

		require.NoError(t, err)
		require.NoError(t, shutdown(context.Background()))
		require.Equal(t, before, otel.GetTracerProvider())
	})

	t.Run("enabled installs an SDK provider", func(t *testing.T) {
		before := otel.GetTracerProvider()

		shutdown, err := cmd.InitTracing(context.Background(), "fulfillment-test", true)

		require.NoError(t, err)
		require.NotEqual(t, before, otel.GetTracerProvider())
		require.NoError(t, shutdown(context.Background()))
	})
}
