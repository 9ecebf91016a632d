// internal/models/matchmaker.go
package models

// Matchmaker priorities.
const (
	PriorityRating   = "rating"
	PriorityReviews  = "reviews"
	PriorityBudget   = "budget"
	PriorityVerified = "verified"
)

// MatchmakerAnswers is the quiz answer set. Nil pointers are unanswered.
type MatchmakerAnswers struct {
	Styles     []string `json:"styles"`
	BudgetTier *int     `json:"budgetTier"`
	Location   *string  `json:"location"`
	Categories []string `json:"categories"`
	Priority   *string  `json:"priority"`
}

// NewMatchmakerAnswers returns an empty answer set with non-nil slices.
func NewMatchmakerAnswers() MatchmakerAnswers {
	return MatchmakerAnswers{Styles: []string{}, Categories: []string{}}
}
