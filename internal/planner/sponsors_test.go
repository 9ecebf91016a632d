package planner

import (
	"testing"

	"everaftr-workers/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSponsors_Seed(t *testing.T) {
	s := NewSponsors()
	require.Len(t, s.List, 2)
	assert.Equal(t, "Maria Santos", s.List[0].Name)
	assert.True(t, s.List[0].InvitationSent)
	assert.False(t, s.List[1].InvitationSent)
}

func TestSponsors_Add(t *testing.T) {
	s := NewSponsors()
	sp := s.Add("s-1")
	assert.Equal(t, models.Sponsor{ID: "s-1", Name: "New Sponsor", Role: "Principal"}, sp)
	assert.Len(t, s.List, 3)
	assert.Equal(t, "Mr/Ms", s.Views()[2].DisplayTitle)
	assert.Equal(t, "Dr.", s.Views()[0].DisplayTitle)
}

func TestNewSponsorID_IsTimeBased(t *testing.T) {
	id, err := uuid.Parse(NewSponsorID())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(1), id.Version())
	assert.NotEqual(t, NewSponsorID(), NewSponsorID())
}

func TestSponsors_Toggles(t *testing.T) {
	s := NewSponsors()

	require.NoError(t, s.ToggleInvitation("2"))
	assert.True(t, s.List[1].InvitationSent)
	require.NoError(t, s.ToggleInvitation("2"))
	assert.False(t, s.List[1].InvitationSent)

	require.NoError(t, s.ToggleGift("1"))
	assert.True(t, s.List[0].GiftPrepared)

	var nf *NotFoundError
	assert.ErrorAs(t, s.ToggleInvitation("x"), &nf)
	assert.ErrorAs(t, s.ToggleGift("x"), &nf)
}

func TestSponsors_Assign(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		assignment string
		wantErr    error
	}{
		{"veil", "1", "Veil", nil},
		{"arras", "2", "Arras", nil},
		{"clear", "1", "", nil},
		{"invalid", "1", "Ring", ErrInvalidAssignment},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSponsors()
			err := s.Assign(tt.id, tt.assignment)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			sp, _ := s.find(tt.id)
			assert.Equal(t, tt.assignment, sp.Assignment)
		})
	}

	var nf *NotFoundError
	assert.ErrorAs(t, NewSponsors().Assign("x", "Cord"), &nf)
}

func TestNewWorkspace(t *testing.T) {
	w := NewWorkspace()
	assert.Len(t, w.Checklist.Items, 7)
	assert.Len(t, w.Budget.Items, 5)
	assert.Len(t, w.Sponsors.List, 2)
	assert.Equal(t, models.TemplateClassicElegant, w.SaveTheDate.TemplateID)
	assert.Equal(t, "We're getting married!", w.SaveTheDate.CustomMessage)
	assert.Nil(t, w.SaveTheDate.PhotoURL)
}
