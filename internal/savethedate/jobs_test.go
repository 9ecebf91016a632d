package savethedate

import (
	"context"
	"testing"
	"time"

	"everaftr-workers/internal/common/errors"
	"everaftr-workers/internal/common/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderJob(t *testing.T) {
	rendered := metrics.CardsRendered.WithLabelValues("classic-elegant", "rendered")
	before := testutil.ToFloat64(rendered)

	r, err := RenderJob(context.Background(), sampleCard(), 1, 30*time.Second)
	require.NoError(t, err)
	assert.Equal(t, CardWidth, r.Width)
	assert.Equal(t, before+1, testutil.ToFloat64(rendered))
}

func TestRenderJob_Errors(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name    string
		ctx     context.Context
		timeout time.Duration
		want    errors.ErrorCode
	}{
		{name: "deadline", ctx: context.Background(), timeout: time.Nanosecond, want: errors.ErrCodeCardRenderTimeout},
		{name: "cancelled job", ctx: cancelled, timeout: time.Minute, want: errors.ErrCodeCardRenderFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RenderJob(tt.ctx, sampleCard(), 2, tt.timeout)
			stdErr, ok := errors.AsStandardError(err)
			require.True(t, ok)
			assert.Equal(t, tt.want, stdErr.Code)
			assert.True(t, stdErr.Retryable)
		})
	}
}

func TestWithoutPhoto(t *testing.T) {
	d := sampleCard()
	url := "data:image/png;base64,AAAA"
	d.PhotoURL = &url

	out := WithoutPhoto(d)
	assert.Nil(t, out.PhotoURL)
	assert.NotNil(t, d.PhotoURL)
	assert.Equal(t, d.BrideName, out.BrideName)
}
