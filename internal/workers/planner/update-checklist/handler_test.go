package updatechecklist

import (
	"context"
	"testing"
	"time"

	"everaftr-workers/internal/common/camunda"
	"everaftr-workers/internal/common/errors"
	"everaftr-workers/internal/common/logger"
	"everaftr-workers/internal/planner"
	"everaftr-workers/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func setup(t *testing.T) (*Handler, string) {
	t.Helper()
	store := session.NewMemoryStore(time.Hour)
	id, err := session.Open(context.Background(), store, session.KindWorkspace, planner.NewWorkspace())
	require.NoError(t, err)
	return NewHandler(DefaultConfig(), camunda.Deps{}, store, logger.NewTestLogger(t)), id
}

// ==========================
// Toggle Tests
// ==========================

func TestHandler_Execute_TogglesPersist(t *testing.T) {
	ctx := context.Background()
	h, id := setup(t)

	tests := []struct {
		toggle      string
		wantRounded int
	}{
		{toggle: "c1", wantRounded: 14},
		{toggle: "c2", wantRounded: 29},
		{toggle: "c3", wantRounded: 43},
		{toggle: "c1", wantRounded: 29},
	}
	for _, tt := range tests {
		out, err := h.Execute(ctx, &Input{SessionID: id, ToggleID: tt.toggle})
		require.NoError(t, err)
		assert.Equal(t, tt.wantRounded, out.Checklist.RoundedProgress, "after %s", tt.toggle)
	}

	out, err := h.Execute(ctx, &Input{SessionID: id, ToggleID: "c7"})
	require.NoError(t, err)
	assert.InDelta(t, 300.0/7, out.Checklist.Progress, 1e-9)
	require.Len(t, out.Checklist.Groups, 4)
	assert.Equal(t, "1 Month Before", out.Checklist.Groups[3].Timeline)
	assert.True(t, out.Checklist.Groups[3].Items[0].IsCompleted)
}

func TestHandler_Execute_Errors(t *testing.T) {
	h, id := setup(t)

	tests := []struct {
		name  string
		input Input
		want  errors.ErrorCode
	}{
		{name: "missing toggle", input: Input{SessionID: id}, want: errors.ErrCodeInputValidationFailed},
		{name: "unknown item", input: Input{SessionID: id, ToggleID: "c99"}, want: errors.ErrCodeItemNotFound},
		{name: "missing session", input: Input{ToggleID: "c1"}, want: errors.ErrCodeInputValidationFailed},
		{name: "expired session", input: Input{SessionID: "old", ToggleID: "c1"}, want: errors.ErrCodeSessionNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := tt.input
			_, err := h.Execute(context.Background(), &input)
			stdErr, ok := errors.AsStandardError(err)
			require.True(t, ok)
			assert.Equal(t, tt.want, stdErr.Code)
		})
	}
}
