// internal/workers/savethedate/render-card/models.go
package rendercard

import (
	"everaftr-workers/internal/models"
	"everaftr-workers/internal/savethedate"
)

// Input names the workspace to render, or carries the form inline.
type Input struct {
	SessionID   string                  `json:"sessionId,omitempty"`
	SaveTheDate *models.SaveTheDateData `json:"saveTheDate,omitempty"`
	Scale       float64                 `json:"scale,omitempty"`
}

type Output struct {
	ImageURL   string            `json:"imageUrl"`
	FileName   string            `json:"fileName"`
	Width      int               `json:"width"`
	Height     int               `json:"height"`
	TemplateID models.TemplateID `json:"templateId"`
	PhotoUsed  bool              `json:"photoUsed"`
	Card       savethedate.Card  `json:"card"`
}
