// internal/savethedate/card.go
package savethedate

import (
	"strings"
	"unicode/utf8"

	"everaftr-workers/internal/models"
)

const (
	defaultBride = "Bride"
	defaultGroom = "Groom"
)

// Card is the derived text of a save-the-date, shared by render and share.
type Card struct {
	TemplateID   models.TemplateID `json:"templateId"`
	TemplateName string            `json:"templateName"`
	Bride        string            `json:"bride"`
	Groom        string            `json:"groom"`
	Monogram     string            `json:"monogram"`
	DateText     string            `json:"dateText"`
	VenueLine    string            `json:"venueLine"`
	Message      string            `json:"message"`
	HasPhoto     bool              `json:"hasPhoto"`
}

// BuildCard derives the card text from the form. It is a pure function.
func BuildCard(d models.SaveTheDateData) Card {
	tpl := Lookup(d.TemplateID)
	bride := orDefault(d.BrideName, defaultBride)
	groom := orDefault(d.GroomName, defaultGroom)
	return Card{
		TemplateID:   tpl.ID,
		TemplateName: tpl.Name,
		Bride:        bride,
		Groom:        groom,
		Monogram:     initial(bride) + " & " + initial(groom),
		DateText:     FormatDate(d.WeddingDate, tpl.DateStyle),
		VenueLine:    VenueLine(d),
		Message:      d.CustomMessage,
		HasPhoto:     d.PhotoURL != nil && *d.PhotoURL != "",
	}
}

// VenueLine joins venue and location, skipping empty parts.
func VenueLine(d models.SaveTheDateData) string {
	parts := make([]string, 0, 2)
	for _, p := range []string{d.Venue, d.Location} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func initial(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return ""
	}
	return string(r)
}

// Changes is a partial form edit. Nil fields are left alone.
type Changes struct {
	GroomName     *string            `json:"groomName,omitempty"`
	BrideName     *string            `json:"brideName,omitempty"`
	WeddingDate   *string            `json:"weddingDate,omitempty"`
	Venue         *string            `json:"venue,omitempty"`
	Location      *string            `json:"location,omitempty"`
	TemplateID    *models.TemplateID `json:"templateId,omitempty"`
	CustomMessage *string            `json:"customMessage,omitempty"`
	RemovePhoto   bool               `json:"removePhoto,omitempty"`
}

// Apply edits d in place.
func (c Changes) Apply(d *models.SaveTheDateData) {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&d.GroomName, c.GroomName)
	set(&d.BrideName, c.BrideName)
	set(&d.WeddingDate, c.WeddingDate)
	set(&d.Venue, c.Venue)
	set(&d.Location, c.Location)
	set(&d.CustomMessage, c.CustomMessage)
	if c.TemplateID != nil {
		d.TemplateID = *c.TemplateID
	}
	if c.RemovePhoto {
		d.PhotoURL = nil
	}
}
