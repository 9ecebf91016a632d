package plannerworkspace

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

func newTestHandler(t *testing.T) (*Handler, session.Store) {
	store := session.NewMemoryStore(time.Hour)
	return NewHandler(DefaultConfig(), camunda.Deps{}, store, logger.NewTestLogger(t)), store
}

func TestHandler_Execute_OpenSeedsEveryTool(t *testing.T) {
	h, _ := newTestHandler(t)

	out, err := h.Execute(context.Background(), &Input{Action: ActionOpen})
	require.NoError(t, err)
	require.NotEmpty(t, out.SessionID)
	require.NotNil(t, out.Workspace)

	ws := out.Workspace
	assert.Len(t, ws.Checklist.Items, 7)
	assert.Equal(t, 0, ws.Checklist.RoundedProgress)
	assert.Equal(t, 515000.0, ws.Budget.TotalEstimated)
	assert.Equal(t, "₱515,000", ws.Budget.TotalEstimatedText)
	require.Len(t, ws.Sponsors, 2)
	assert.Equal(t, "Dr.", ws.Sponsors[0].DisplayTitle)
	assert.Equal(t, "classic-elegant", string(ws.SaveTheDate.TemplateID))
}

func TestHandler_Execute_GetAndReset(t *testing.T) {
	ctx := context.Background()
	h, store := newTestHandler(t)

	opened, err := h.Execute(ctx, &Input{Action: ActionOpen})
	require.NoError(t, err)
	id := opened.SessionID

	w, err := planner.LoadWorkspace(ctx, store, id)
	require.NoError(t, err)
	require.NoError(t, w.Checklist.Toggle("c1"))
	_, err = w.Budget.SetActual("b1", "1000")
	require.NoError(t, err)
	require.NoError(t, planner.SaveWorkspace(ctx, store, id, w))

	got, err := h.Execute(ctx, &Input{Action: ActionGet, SessionID: id})
	require.NoError(t, err)
	assert.True(t, got.Workspace.Checklist.Items[0].IsCompleted)
	assert.Equal(t, 1000.0, got.Workspace.Budget.TotalActual)

	reset, err := h.Execute(ctx, &Input{Action: ActionReset, SessionID: id})
	require.NoError(t, err)
	assert.Equal(t, id, reset.SessionID)
	assert.False(t, reset.Workspace.Checklist.Items[0].IsCompleted)
	assert.Equal(t, 0.0, reset.Workspace.Budget.TotalActual)
}

func TestHandler_Execute_Close(t *testing.T) {
	ctx := context.Background()
	h, _ := newTestHandler(t)

	opened, err := h.Execute(ctx, &Input{Action: ActionOpen})
	require.NoError(t, err)

	out, err := h.Execute(ctx, &Input{Action: ActionClose, SessionID: opened.SessionID})
	require.NoError(t, err)
	assert.True(t, out.Closed)
	assert.Nil(t, out.Workspace)

	_, err = h.Execute(ctx, &Input{Action: ActionGet, SessionID: opened.SessionID})
	stdErr, ok := errors.AsStandardError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeSessionNotFound, stdErr.Code)
}

func TestHandler_Execute_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input Input
		want  errors.ErrorCode
	}{
		{name: "unknown action", input: Input{Action: "archive"}, want: errors.ErrCodeInputValidationFailed},
		{name: "get without id", input: Input{Action: ActionGet}, want: errors.ErrCodeInputValidationFailed},
		{name: "get expired", input: Input{Action: ActionGet, SessionID: "gone"}, want: errors.ErrCodeSessionNotFound},
		{name: "reset expired", input: Input{Action: ActionReset, SessionID: "gone"}, want: errors.ErrCodeSessionNotFound},
		{name: "close without id", input: Input{Action: ActionClose}, want: errors.ErrCodeInputValidationFailed},
	}

	h, _ := newTestHandler(t)
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
