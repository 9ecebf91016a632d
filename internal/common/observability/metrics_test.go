package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestNew_WithoutTracing(t *testing.T) {
	obs, err := New(Options{ServiceName: "everaftr-test"})
	require.NoError(t, err)
	defer obs.Shutdown()

	assert.Nil(t, obs.tracing)

	ctx := context.Background()
	obs.RecordJobProcessed(ctx, "filter-vendors", "completed")
	obs.RecordJobDuration(ctx, "filter-vendors", 12*time.Millisecond, "completed")

	spanCtx, span := obs.StartSpan(ctx, "filter-vendors", attribute.Int("vendors", 8))
	assert.NotNil(t, spanCtx)
	span.End()
}

func TestZeroValue_IsSafe(t *testing.T) {
	var obs Observability
	obs.RecordJobProcessed(context.Background(), "x", "failed")
	obs.RecordJobDuration(context.Background(), "x", time.Second, "failed")
	obs.Shutdown()
}
