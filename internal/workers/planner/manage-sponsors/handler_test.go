package managesponsors

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

	h := NewHandler(DefaultConfig(), camunda.Deps{}, store, logger.NewTestLogger(t))
	h.newID = func() string { return "s-new" }
	return h, id
}

func exec(t *testing.T, h *Handler, input Input) *Output {
	t.Helper()
	out, err := h.Execute(context.Background(), &input)
	require.NoError(t, err)
	return out
}

// ==========================
// Action Tests
// ==========================

func TestHandler_Execute_List(t *testing.T) {
	h, id := setup(t)
	out := exec(t, h, Input{SessionID: id, Action: ActionList})

	require.Len(t, out.Sponsors, 2)
	assert.Equal(t, "Maria Santos", out.Sponsors[0].Name)
	assert.True(t, out.Sponsors[0].InvitationSent)
	assert.Nil(t, out.Added)
}

func TestHandler_Execute_Add(t *testing.T) {
	h, id := setup(t)
	out := exec(t, h, Input{SessionID: id, Action: ActionAdd})

	require.NotNil(t, out.Added)
	assert.Equal(t, "s-new", out.Added.ID)
	assert.Equal(t, planner.NewSponsorName, out.Added.Name)
	assert.Equal(t, planner.DefaultTitle, out.Added.DisplayTitle)
	require.Len(t, out.Sponsors, 3)

	// persisted
	again := exec(t, h, Input{SessionID: id})
	assert.Len(t, again.Sponsors, 3)
}

func TestHandler_Execute_Toggles(t *testing.T) {
	h, id := setup(t)

	out := exec(t, h, Input{SessionID: id, Action: ActionToggleInvitation, SponsorID: "1"})
	assert.False(t, out.Sponsors[0].InvitationSent)

	out = exec(t, h, Input{SessionID: id, Action: ActionToggleGift, SponsorID: "2"})
	assert.True(t, out.Sponsors[1].GiftPrepared)

	out = exec(t, h, Input{SessionID: id, Action: ActionToggleGift, SponsorID: "2"})
	assert.False(t, out.Sponsors[1].GiftPrepared)
}

func TestHandler_Execute_Assign(t *testing.T) {
	h, id := setup(t)

	out := exec(t, h, Input{SessionID: id, Action: ActionAssign, SponsorID: "2", Assignment: "Cord"})
	assert.Equal(t, "Cord", out.Sponsors[1].Assignment)

	out = exec(t, h, Input{SessionID: id, Action: ActionAssign, SponsorID: "2"})
	assert.Empty(t, out.Sponsors[1].Assignment)
}

func TestHandler_Execute_Errors(t *testing.T) {
	h, id := setup(t)

	tests := []struct {
		name  string
		input Input
		want  errors.ErrorCode
	}{
		{name: "unknown action", input: Input{SessionID: id, Action: "remove", SponsorID: "1"}, want: errors.ErrCodeInputValidationFailed},
		{name: "toggle without id", input: Input{SessionID: id, Action: ActionToggleGift}, want: errors.ErrCodeInputValidationFailed},
		{name: "unknown sponsor", input: Input{SessionID: id, Action: ActionToggleInvitation, SponsorID: "99"}, want: errors.ErrCodeItemNotFound},
		{name: "bad assignment", input: Input{SessionID: id, Action: ActionAssign, SponsorID: "1", Assignment: "Ring"}, want: errors.ErrCodeInputValidationFailed},
		{name: "expired session", input: Input{SessionID: "old", Action: ActionAdd}, want: errors.ErrCodeSessionNotFound},
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

	// rejected actions leave the list alone
	out := exec(t, h, Input{SessionID: id})
	assert.Equal(t, "", out.Sponsors[0].Assignment)
	assert.True(t, out.Sponsors[0].InvitationSent)
}
