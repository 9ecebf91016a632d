// internal/planner/checklist.go
package planner

import (
	"math"

	"everaftr-workers/internal/models"
)

// Timelines are the checklist windows, in display order.
var Timelines = []string{"12 Months Before", "6 Months Before", "3 Months Before", "1 Month Before"}

func seedChecklist() []models.ChecklistItem {
	return []models.ChecklistItem{
		{ID: "c1", Task: "Pamamanhikan (Formal meeting of families)", Category: models.ChecklistTradition, Timeline: Timelines[0], IsFilipinoSpecific: true},
		{ID: "c2", Task: "Book your Church or Civil venue", Category: models.ChecklistLogistics, Timeline: Timelines[0]},
		{ID: "c3", Task: "Secure Marriage License from LCR", Category: models.ChecklistLegal, Timeline: Timelines[1], IsFilipinoSpecific: true},
		{ID: "c4", Task: "Attend Canonical Interview (for Church weddings)", Category: models.ChecklistLegal, Timeline: Timelines[2], IsFilipinoSpecific: true},
		{ID: "c5", Task: "Choose Principal Sponsors (Ninongs/Ninangs)", Category: models.ChecklistSocial, Timeline: Timelines[1], IsFilipinoSpecific: true},
		{ID: "c6", Task: "Buy Arras, Candles, Veil, and Cord", Category: models.ChecklistTradition, Timeline: Timelines[2], IsFilipinoSpecific: true},
		{ID: "c7", Task: "Final Gown and Barong Fitting", Category: models.ChecklistAttire, Timeline: Timelines[3]},
	}
}

type Checklist struct {
	Items []models.ChecklistItem `json:"items"`
}

func NewChecklist() *Checklist {
	return &Checklist{Items: seedChecklist()}
}

// Toggle flips the completion flag of one item.
func (c *Checklist) Toggle(id string) error {
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items[i].IsCompleted = !c.Items[i].IsCompleted
			return nil
		}
	}
	return &NotFoundError{Kind: "checklist item", ID: id}
}

// Progress is the completed share in percent; 0 for an empty list.
func (c *Checklist) Progress() float64 {
	if len(c.Items) == 0 {
		return 0
	}
	done := 0
	for _, it := range c.Items {
		if it.IsCompleted {
			done++
		}
	}
	return float64(done) / float64(len(c.Items)) * 100
}

// TimelineGroup is one heading of the checklist view.
type TimelineGroup struct {
	Timeline string                 `json:"timeline"`
	Items    []models.ChecklistItem `json:"items"`
}

// Groups buckets items under Timelines, dropping empty windows.
func (c *Checklist) Groups() []TimelineGroup {
	var groups []TimelineGroup
	for _, tl := range Timelines {
		var items []models.ChecklistItem
		for _, it := range c.Items {
			if it.Timeline == tl {
				items = append(items, it)
			}
		}
		if len(items) > 0 {
			groups = append(groups, TimelineGroup{Timeline: tl, Items: items})
		}
	}
	return groups
}

// roundHalfUp rounds .5 toward positive infinity.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
