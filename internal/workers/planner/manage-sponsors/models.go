// internal/workers/planner/manage-sponsors/models.go
package managesponsors

import "everaftr-workers/internal/planner"

const (
	ActionList             = "list"
	ActionAdd              = "add"
	ActionToggleInvitation = "toggle-invitation"
	ActionToggleGift       = "toggle-gift"
	ActionAssign           = "assign"
)

type Input struct {
	SessionID  string `json:"sessionId"`
	Action     string `json:"action"`
	SponsorID  string `json:"sponsorId,omitempty"`
	Assignment string `json:"assignment,omitempty"`
}

type Output struct {
	SessionID string                `json:"sessionId"`
	Sponsors  []planner.SponsorView `json:"sponsors"`
	// Added is set by the add action.
	Added *planner.SponsorView `json:"added,omitempty"`
}
