package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecklist_Progress(t *testing.T) {
	c := NewChecklist()
	require.Len(t, c.Items, 7)
	assert.Equal(t, 0.0, c.Progress())

	require.NoError(t, c.Toggle("c1"))
	assert.InDelta(t, 100.0/7, c.Progress(), 1e-9)
	assert.Equal(t, 14, c.View().RoundedProgress)

	for _, it := range c.Items[1:] {
		require.NoError(t, c.Toggle(it.ID))
	}
	assert.Equal(t, 100.0, c.Progress())

	// toggling again flips back
	require.NoError(t, c.Toggle("c1"))
	assert.False(t, c.Items[0].IsCompleted)
}

func TestChecklist_EmptyProgress(t *testing.T) {
	assert.Equal(t, 0.0, (&Checklist{}).Progress())
}

func TestChecklist_ToggleUnknown(t *testing.T) {
	c := NewChecklist()
	err := c.Toggle("c99")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "c99", nf.ID)
}

func TestChecklist_Groups(t *testing.T) {
	c := NewChecklist()
	groups := c.Groups()
	require.Len(t, groups, 4)

	assert.Equal(t, "12 Months Before", groups[0].Timeline)
	assert.Len(t, groups[0].Items, 2)
	assert.Equal(t, "6 Months Before", groups[1].Timeline)
	assert.Equal(t, []string{"c3", "c5"}, []string{groups[1].Items[0].ID, groups[1].Items[1].ID})
	assert.Equal(t, "1 Month Before", groups[3].Timeline)

	c.Items = c.Items[:2]
	assert.Len(t, c.Groups(), 1, "empty windows are dropped")
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 43, roundHalfUp(42.5))
	assert.Equal(t, 42, roundHalfUp(42.49))
	assert.Equal(t, 0, roundHalfUp(0))
}
