// internal/savethedate/templates.go
package savethedate

import (
	"fmt"
	"image/color"

	"everaftr-workers/internal/models"
)

// Template is one card design. Layout draws the card; there is no shared
// base design.
type Template struct {
	ID          models.TemplateID `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	AccentColor string            `json:"accentColor"`
	Background  string            `json:"backgroundColor"`
	DateStyle   DateStyle         `json:"dateStyle"`

	layout layoutFunc
}

var templates = []Template{
	{
		ID:          models.TemplateClassicElegant,
		Name:        "Classic Elegant",
		Description: "Timeless serif typography with delicate gold accents",
		AccentColor: "#C5A572",
		Background:  "#FDF8F0",
		DateStyle:   DateLong,
		layout:      layoutClassic,
	},
	{
		ID:          models.TemplateModernMinimal,
		Name:        "Modern Minimal",
		Description: "Clean lines and bold sans-serif letterforms",
		AccentColor: "#1C3347",
		Background:  "#FFFFFF",
		DateStyle:   DateNumeric,
		layout:      layoutModern,
	},
	{
		ID:          models.TemplateFilipiniana,
		Name:        "Filipiniana",
		Description: "Heritage-inspired motifs with warm earth tones",
		AccentColor: "#8B6914",
		Background:  "#F5EDE0",
		DateStyle:   DateFilipino,
		layout:      layoutFilipiniana,
	},
	{
		ID:          models.TemplateTropicalBeach,
		Name:        "Tropical / Beach",
		Description: "Breezy ocean palette with botanical accents",
		AccentColor: "#6B96AD",
		Background:  "#EDF3F7",
		DateStyle:   DateLong,
		layout:      layoutTropical,
	},
}

var templateIndex = func() map[models.TemplateID]int {
	m := make(map[models.TemplateID]int, len(templates))
	for i, t := range templates {
		m[t.ID] = i
	}
	return m
}()

// Templates lists the designs in picker order.
func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// Lookup returns the template for id, falling back to classic-elegant.
func Lookup(id models.TemplateID) Template {
	if i, ok := templateIndex[id]; ok {
		return templates[i]
	}
	return templates[0]
}

// IsTemplate reports whether id names a known design.
func IsTemplate(id models.TemplateID) bool {
	_, ok := templateIndex[id]
	return ok
}

func hex(s string) color.RGBA {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func withAlpha(c color.RGBA, a float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a * 255)}
}
