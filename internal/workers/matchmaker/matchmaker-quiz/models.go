// internal/workers/matchmaker/matchmaker-quiz/models.go
package matchmakerquiz

import (
	"everaftr-workers/internal/matchmaker"
	"everaftr-workers/internal/models"
)

type Input struct {
	SessionID string `json:"sessionId,omitempty"`
	Action    string `json:"action"`
	Value     string `json:"value,omitempty"`
}

type Output struct {
	SessionID       string                   `json:"sessionId"`
	Phase           string                   `json:"phase,omitempty"`
	Step            *StepView                `json:"step,omitempty"`
	ProgressLabel   string                   `json:"progressLabel,omitempty"`
	ProgressPercent float64                  `json:"progressPercent"`
	Answers         models.MatchmakerAnswers `json:"answers"`
	Matches         []matchmaker.Match       `json:"matches,omitempty"`
	Groups          []matchmaker.Group       `json:"groups,omitempty"`
	Closed          bool                     `json:"closed,omitempty"`
}

// StepView is the showing quiz screen with the current selection marked.
type StepView struct {
	Index    int              `json:"index"`
	Title    string           `json:"title"`
	Subtitle string           `json:"subtitle"`
	Field    matchmaker.Field `json:"field"`
	Multi    bool             `json:"multi"`
	Options  []OptionView     `json:"options"`
}

type OptionView struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Selected bool   `json:"selected"`
}
