// internal/workers/planner/update-checklist/models.go
package updatechecklist

import "everaftr-workers/internal/planner"

type Input struct {
	SessionID string `json:"sessionId"`
	ToggleID  string `json:"toggleId"`
}

type Output struct {
	SessionID string                `json:"sessionId"`
	Checklist planner.ChecklistView `json:"checklist"`
}
