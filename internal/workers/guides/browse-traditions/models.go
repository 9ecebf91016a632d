// internal/workers/guides/browse-traditions/models.go
package browsetraditions

import (
	"everaftr-workers/internal/guides"
	"everaftr-workers/internal/models"
)

// Input is the guide state held by the process: the expanded card and the
// card the couple tapped. Both are optional.
type Input struct {
	ActiveID string `json:"activeId,omitempty"`
	ToggleID string `json:"toggleId,omitempty"`
}

type Output struct {
	Phases   []guides.PhaseGroup `json:"phases"`
	ActiveID string              `json:"activeId"`
	Active   *models.Tradition   `json:"active,omitempty"`
}
