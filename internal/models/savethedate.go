// internal/models/savethedate.go
package models

type TemplateID string

const (
	TemplateClassicElegant TemplateID = "classic-elegant"
	TemplateModernMinimal  TemplateID = "modern-minimal"
	TemplateFilipiniana    TemplateID = "filipiniana"
	TemplateTropicalBeach  TemplateID = "tropical-beach"
)

const DefaultCustomMessage = "We're getting married!"

// SaveTheDateData is the announcement card form state.
type SaveTheDateData struct {
	GroomName     string     `json:"groomName"`
	BrideName     string     `json:"brideName"`
	WeddingDate   string     `json:"weddingDate"` // YYYY-MM-DD
	Venue         string     `json:"venue"`
	Location      string     `json:"location"`
	PhotoURL      *string    `json:"photoUrl"`
	TemplateID    TemplateID `json:"templateId"`
	CustomMessage string     `json:"customMessage,omitempty"`
}

// NewSaveTheDateData returns the blank form.
func NewSaveTheDateData() SaveTheDateData {
	return SaveTheDateData{
		TemplateID:    TemplateClassicElegant,
		CustomMessage: DefaultCustomMessage,
	}
}
