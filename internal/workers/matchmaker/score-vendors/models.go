// internal/workers/matchmaker/score-vendors/models.go
package scorevendors

import (
	"everaftr-workers/internal/matchmaker"
	"everaftr-workers/internal/models"
)

// Input carries the answers inline, or names a quiz session to read them from.
type Input struct {
	SessionID string                    `json:"sessionId,omitempty"`
	Answers   *models.MatchmakerAnswers `json:"answers,omitempty"`
}

type Output struct {
	Matches []matchmaker.Match `json:"matches"`
	Groups  []matchmaker.Group `json:"groups"`
	Count   int                `json:"count"`
}
