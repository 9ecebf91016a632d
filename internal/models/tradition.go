// internal/models/tradition.go
package models

// Tradition phases, in display order.
const (
	PhasePreWedding  = "Pre-wedding"
	PhaseCeremony    = "Ceremony"
	PhasePostWedding = "Post-wedding"
)

type Tradition struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Phase        string   `json:"phase"`
	Description  string   `json:"description"`
	Significance string   `json:"significance"`
	Tips         []string `json:"tips"`
	ModernTwist  string   `json:"modernTwist,omitempty"`
}
