// internal/guides/traditions.go
package guides

import (
	"fmt"

	"everaftr-workers/internal/models"
)

// Phases in display order.
var Phases = []string{models.PhasePreWedding, models.PhaseCeremony, models.PhasePostWedding}

// Traditions returns a fresh copy of the guide content.
func Traditions() []models.Tradition {
	return []models.Tradition{
		{
			ID: "t1", Title: "Pamamanhikan", Phase: models.PhasePreWedding,
			Description:  "The formal meeting of the two families where the groom and his parents visit the bride's family to formally ask for her hand.",
			Significance: "It respects the elders and ensures the union starts with family harmony and blessing.",
			Tips:         []string{"Bring meaningful food or gifts", `Prepare a "Save the Date" card for parents`},
			ModernTwist:  "Host it as a cozy brunch or a hybrid video call if family members are overseas.",
		},
		{
			ID: "t2", Title: "Bulungan", Phase: models.PhasePreWedding,
			Description:  `A "whispering" session between families to discuss wedding logistics, budget, and responsibilities.`,
			Significance: "Prevents public embarrassment and promotes consensus without the pressure of a grand meeting.",
			Tips:         []string{"Keep it intimate", "Have a clear list of topics"},
			ModernTwist:  "Use a shared digital spreadsheet to keep everyone on the same page after the talk.",
		},
		{
			ID: "t3", Title: "The Arras Ceremony", Phase: models.PhaseCeremony,
			Description:  "The groom presents 13 gold or silver coins to the bride, representing their shared wealth.",
			Significance: "Symbolizes the groom's commitment to provide and the bride's stewardship of their resources.",
			Tips:         []string{"Use heirloom coins", `Practice the "pouring" motion`},
			ModernTwist:  "Use custom coins engraved with your wedding date or initials.",
		},
		{
			ID: "t4", Title: "The Cord and Veil", Phase: models.PhaseCeremony,
			Description:  "Principal sponsors drape a veil and an infinity-shaped cord over the couple.",
			Significance: "The veil represents being clothed as one, while the cord signifies a lifelong eternal bond.",
			Tips:         []string{"Involve cherished Ninongs and Ninangs", "Practice with the pins"},
			ModernTwist:  "Design a bespoke cord made of silk or floral vines to match your theme.",
		},
		{
			ID: "t5", Title: "Unity Candle", Phase: models.PhaseCeremony,
			Description:  "The couple lights a single center candle from two smaller individual candles.",
			Significance: "Represents the merging of two lives and two families into a single bright light.",
			Tips:         []string{"Assign family elders to light the initial candles"},
			ModernTwist:  "Mix two colors of sand or paint on a canvas for a lasting piece of art.",
		},
		{
			ID: "t6", Title: "Prosperity Dance", Phase: models.PhasePostWedding,
			Description:  "Also known as the Money Dance, guests pin paper bills onto the couple's attire during their first dance.",
			Significance: "A communal way for family and friends to help the couple start their financial life together.",
			Tips:         []string{"Have safety pins ready", "Prepare an upbeat playlist"},
			ModernTwist:  `Provide a stylish "Money Tree" or display a discrete QR code for digital transfers.`,
		},
		{
			ID: "t7", Title: "Sabugan / Reception Tokens", Phase: models.PhasePostWedding,
			Description:  `The distribution of small tokens or "pasalubong" to guests as they leave.`,
			Significance: "A gesture of gratitude for the community that supported the union.",
			Tips:         []string{"Choose locally sourced items", "Add personalized notes"},
			ModernTwist:  "Give eco-friendly seeds, artisanal local coffee, or succulents.",
		},
	}
}

// PhaseGroup is one section of the guide.
type PhaseGroup struct {
	Phase      string             `json:"phase"`
	Traditions []models.Tradition `json:"traditions"`
}

// ByPhase groups traditions in Phases order. Phases without entries are kept
// so the guide layout is stable.
func ByPhase(traditions []models.Tradition) []PhaseGroup {
	groups := make([]PhaseGroup, len(Phases))
	for i, p := range Phases {
		groups[i] = PhaseGroup{Phase: p, Traditions: []models.Tradition{}}
		for _, t := range traditions {
			if t.Phase == p {
				groups[i].Traditions = append(groups[i].Traditions, t)
			}
		}
	}
	return groups
}

// Guide tracks which tradition card is expanded.
type Guide struct {
	ActiveID string `json:"activeId,omitempty"`
}

// Toggle expands id, or collapses it when it is already expanded.
func (g *Guide) Toggle(traditions []models.Tradition, id string) error {
	if _, ok := find(traditions, id); !ok {
		return fmt.Errorf("tradition %q not found", id)
	}
	if g.ActiveID == id {
		g.ActiveID = ""
		return nil
	}
	g.ActiveID = id
	return nil
}

// Active returns the expanded tradition, if any.
func (g *Guide) Active(traditions []models.Tradition) (models.Tradition, bool) {
	if g.ActiveID == "" {
		return models.Tradition{}, false
	}
	return find(traditions, g.ActiveID)
}

func find(traditions []models.Tradition, id string) (models.Tradition, bool) {
	for _, t := range traditions {
		if t.ID == id {
			return t, true
		}
	}
	return models.Tradition{}, false
}
