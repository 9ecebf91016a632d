// internal/planner/workspace.go
package planner

import "everaftr-workers/internal/models"

// Workspace is one couple's planning session. Each tool owns its own working
// set; nothing links across them.
type Workspace struct {
	Checklist   *Checklist             `json:"checklist"`
	Budget      *Budget                `json:"budget"`
	Sponsors    *Sponsors              `json:"sponsors"`
	SaveTheDate models.SaveTheDateData `json:"saveTheDate"`
}

func NewWorkspace() *Workspace {
	return &Workspace{
		Checklist:   NewChecklist(),
		Budget:      NewBudget(),
		Sponsors:    NewSponsors(),
		SaveTheDate: models.NewSaveTheDateData(),
	}
}

// ChecklistView is the checklist as displayed.
type ChecklistView struct {
	Items           []models.ChecklistItem `json:"items"`
	Groups          []TimelineGroup        `json:"groups"`
	Progress        float64                `json:"progress"`
	RoundedProgress int                    `json:"roundedProgress"`
}

func (c *Checklist) View() ChecklistView {
	p := c.Progress()
	return ChecklistView{
		Items:           c.Items,
		Groups:          c.Groups(),
		Progress:        p,
		RoundedProgress: roundHalfUp(p),
	}
}

// WorkspaceView is every planning tool as displayed.
type WorkspaceView struct {
	Checklist   ChecklistView          `json:"checklist"`
	Budget      Summary                `json:"budget"`
	Sponsors    []SponsorView          `json:"sponsors"`
	SaveTheDate models.SaveTheDateData `json:"saveTheDate"`
}

func (w *Workspace) View() WorkspaceView {
	return WorkspaceView{
		Checklist:   w.Checklist.View(),
		Budget:      w.Budget.Summary(),
		Sponsors:    w.Sponsors.Views(),
		SaveTheDate: w.SaveTheDate,
	}
}
