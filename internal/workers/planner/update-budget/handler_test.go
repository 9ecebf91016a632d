package updatebudget

import (
	"context"
	"encoding/json"
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

func setup(t *testing.T) (*Handler, string) {
	t.Helper()
	store := session.NewMemoryStore(time.Hour)
	id, err := session.Open(context.Background(), store, session.KindWorkspace, planner.NewWorkspace())
	require.NoError(t, err)
	return NewHandler(DefaultConfig(), camunda.Deps{}, store, logger.NewTestLogger(t)), id
}

// ==========================
// Amount Tests
// ==========================

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		raw     string
		want    Amount
		wantErr bool
	}{
		{raw: `"260000"`, want: "260000"},
		{raw: `"12abc"`, want: "12abc"},
		{raw: `260000`, want: "260000"},
		{raw: `1500.5`, want: "1500.5"},
		{raw: `null`, want: ""},
		{raw: `true`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var in Input
			err := json.Unmarshal([]byte(`{"itemId":"b1","actual":`+tt.raw+`}`), &in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, in.Actual)
		})
	}
}

// ==========================
// Execute Tests
// ==========================

func TestHandler_Execute(t *testing.T) {
	ctx := context.Background()
	h, id := setup(t)

	out, err := h.Execute(ctx, &Input{SessionID: id, ItemID: "b1", Actual: "260000"})
	require.NoError(t, err)
	assert.Equal(t, 260000.0, out.Actual)
	assert.True(t, out.Budget.Items[0].OverBudget)
	assert.Equal(t, "Over Budget", out.Budget.Items[0].Variance.Label)
	assert.Equal(t, "₱10,000", out.Budget.Items[0].VarianceDisplay)

	out, err = h.Execute(ctx, &Input{SessionID: id, ItemID: "b3", Actual: "60000"})
	require.NoError(t, err)
	assert.Equal(t, 320000.0, out.Budget.TotalActual)
	// 320000 / 515000 = 62.13%
	assert.Equal(t, 62, out.Budget.OverallPercent)

	// non-numeric text clears the line
	out, err = h.Execute(ctx, &Input{SessionID: id, ItemID: "b1", Actual: "n/a"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, out.Actual)
	assert.Equal(t, 60000.0, out.Budget.TotalActual)
}

func TestHandler_Execute_Errors(t *testing.T) {
	h, id := setup(t)

	tests := []struct {
		name  string
		input Input
		want  errors.ErrorCode
	}{
		{name: "missing item", input: Input{SessionID: id, Actual: "1"}, want: errors.ErrCodeInputValidationFailed},
		{name: "unknown item", input: Input{SessionID: id, ItemID: "b42", Actual: "1"}, want: errors.ErrCodeItemNotFound},
		{name: "expired session", input: Input{SessionID: "old", ItemID: "b1"}, want: errors.ErrCodeSessionNotFound},
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
