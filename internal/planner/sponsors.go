// internal/planner/sponsors.go
package planner

import (
	"fmt"

	"everaftr-workers/internal/models"

	"github.com/google/uuid"
)

const (
	NewSponsorName = "New Sponsor"
	DefaultTitle   = "Mr/Ms"
)

func seedSponsors() []models.Sponsor {
	return []models.Sponsor{
		{ID: "1", Name: "Maria Santos", Title: "Dr.", Role: models.SponsorPrincipal, InvitationSent: true},
		{ID: "2", Name: "Jose Rizal Jr.", Title: "Hon.", Role: models.SponsorPrincipal},
	}
}

type Sponsors struct {
	List []models.Sponsor `json:"list"`
}

func NewSponsors() *Sponsors {
	return &Sponsors{List: seedSponsors()}
}

// NewSponsorID returns a time-based identifier.
func NewSponsorID() string {
	id, err := uuid.NewUUID()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Add appends a default Principal sponsor.
func (s *Sponsors) Add(id string) models.Sponsor {
	sp := models.Sponsor{ID: id, Name: NewSponsorName, Role: models.SponsorPrincipal}
	s.List = append(s.List, sp)
	return sp
}

func (s *Sponsors) find(id string) (*models.Sponsor, error) {
	for i := range s.List {
		if s.List[i].ID == id {
			return &s.List[i], nil
		}
	}
	return nil, &NotFoundError{Kind: "sponsor", ID: id}
}

func (s *Sponsors) ToggleInvitation(id string) error {
	sp, err := s.find(id)
	if err != nil {
		return err
	}
	sp.InvitationSent = !sp.InvitationSent
	return nil
}

func (s *Sponsors) ToggleGift(id string) error {
	sp, err := s.find(id)
	if err != nil {
		return err
	}
	sp.GiftPrepared = !sp.GiftPrepared
	return nil
}

// ErrInvalidAssignment wraps an assignment outside Veil/Cord/Candle/Arras.
var ErrInvalidAssignment = fmt.Errorf("assignment must be one of %s, %s, %s, %s",
	models.AssignmentVeil, models.AssignmentCord, models.AssignmentCandle, models.AssignmentArras)

// Assign sets the ceremony role; an empty assignment clears it.
func (s *Sponsors) Assign(id, assignment string) error {
	if assignment != "" && !models.IsValidAssignment(assignment) {
		return fmt.Errorf("%w: got %q", ErrInvalidAssignment, assignment)
	}
	sp, err := s.find(id)
	if err != nil {
		return err
	}
	sp.Assignment = assignment
	return nil
}

// DisplayTitle falls back to Mr/Ms for sponsors without an honorific.
func DisplayTitle(sp models.Sponsor) string {
	if sp.Title == "" {
		return DefaultTitle
	}
	return sp.Title
}

// SponsorView is a sponsor row as displayed.
type SponsorView struct {
	models.Sponsor
	DisplayTitle string `json:"displayTitle"`
}

func (s *Sponsors) Views() []SponsorView {
	out := make([]SponsorView, len(s.List))
	for i, sp := range s.List {
		out[i] = SponsorView{Sponsor: sp, DisplayTitle: DisplayTitle(sp)}
	}
	return out
}
