// internal/workers/planner/planner-workspace/models.go
package plannerworkspace

import "everaftr-workers/internal/planner"

const (
	ActionOpen  = "open"
	ActionGet   = "get"
	ActionReset = "reset"
	ActionClose = "close"
)

type Input struct {
	Action    string `json:"action"`
	SessionID string `json:"sessionId,omitempty"`
}

type Output struct {
	SessionID string                 `json:"sessionId"`
	Workspace *planner.WorkspaceView `json:"workspace,omitempty"`
	Closed    bool                   `json:"closed,omitempty"`
}
