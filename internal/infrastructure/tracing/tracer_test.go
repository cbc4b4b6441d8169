//go:build unit
// +build unit

package tracing

import (
	"context"
	"testing"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/pkg/config"
	"github.com/MGTheTrain/scrimhub/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTracer_Disabled(t *testing.T) {
	shutdown, err := InitTracer(context.Background(), &config.TracingSettings{}, "test", testutil.SetupTestLogger(t))
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitTracer_Enabled(t *testing.T) {
	settings := &config.TracingSettings{
		Enabled:     true,
		Endpoint:    "localhost:4317",
		ServiceName: "scrimhub-test",
	}

	// the grpc client connects lazily, so no collector is needed to build the provider
	shutdown, err := InitTracer(context.Background(), settings, "test", testutil.SetupTestLogger(t))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = shutdown(ctx)
}
