// internal/models/planner.go
package models

// Checklist categories.
const (
	ChecklistLegal     = "Legal"
	ChecklistTradition = "Tradition"
	ChecklistLogistics = "Logistics"
	ChecklistAttire    = "Attire"
	ChecklistSocial    = "Social"
)

type ChecklistItem struct {
	ID                 string `json:"id"`
	Task               string `json:"task"`
	Category           string `json:"category"`
	Timeline           string `json:"timeline"`
	IsCompleted        bool   `json:"isCompleted"`
	IsFilipinoSpecific bool   `json:"isFilipinoSpecific,omitempty"`
}

type BudgetItem struct {
	ID        string  `json:"id"`
	Category  string  `json:"category"`
	Estimated float64 `json:"estimated"`
	Actual    float64 `json:"actual"`
	Notes     string  `json:"notes,omitempty"`
}

// Sponsor roles.
const (
	SponsorPrincipal = "Principal"
	SponsorSecondary = "Secondary"
)

// Ceremony assignments a sponsor can hold.
const (
	AssignmentVeil   = "Veil"
	AssignmentCord   = "Cord"
	AssignmentCandle = "Candle"
	AssignmentArras  = "Arras"
)

// Sponsor is a Ninong or Ninang.
type Sponsor struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Title          string `json:"title,omitempty"`
	Role           string `json:"role"`
	Assignment     string `json:"assignment,omitempty"`
	InvitationSent bool   `json:"invitationSent"`
	GiftPrepared   bool   `json:"giftPrepared"`
}

// IsValidAssignment reports whether a is one of the ceremony assignments.
func IsValidAssignment(a string) bool {
	switch a {
	case AssignmentVeil, AssignmentCord, AssignmentCandle, AssignmentArras:
		return true
	}
	return false
}
