// internal/matchmaker/quiz.go
package matchmaker

import (
	"errors"
	"fmt"
	"strconv"

	"everaftr-workers/internal/models"
)

// Quiz actions.
const (
	ActionStart  = "start"
	ActionSelect = "select"
	ActionNext   = "next"
	ActionBack   = "back"
	ActionReset  = "reset"
	ActionClose  = "close"
)

// Phases.
const (
	PhaseQuiz    = "quiz"
	PhaseResults = "results"
)

var (
	ErrNotOnStep     = errors.New("no quiz step is showing")
	ErrUnknownOption = errors.New("option is not offered on this step")
)

// Quiz is the matchmaker state machine. It serializes as session state.
type Quiz struct {
	Step        int                      `json:"step"`
	ShowResults bool                     `json:"showResults"`
	Answers     models.MatchmakerAnswers `json:"answers"`
}

func NewQuiz() *Quiz {
	return &Quiz{Answers: models.NewMatchmakerAnswers()}
}

func (q *Quiz) Phase() string {
	if q.ShowResults {
		return PhaseResults
	}
	return PhaseQuiz
}

// Current returns the showing step, or false on the results screen.
func (q *Quiz) Current() (Step, bool) {
	if q.ShowResults || q.Step < 0 || q.Step >= len(Steps) {
		return Step{}, false
	}
	return Steps[q.Step], true
}

// Next advances regardless of whether the current step was answered.
func (q *Quiz) Next() {
	if q.ShowResults {
		return
	}
	if q.Step < len(Steps)-1 {
		q.Step++
		return
	}
	q.ShowResults = true
}

func (q *Quiz) Back() {
	if q.ShowResults {
		q.ShowResults = false
		return
	}
	if q.Step > 0 {
		q.Step--
	}
}

func (q *Quiz) Reset() {
	*q = *NewQuiz()
}

// Select toggles value on a multi step, or sets it on a single step and
// clears it when it is already the selection.
func (q *Quiz) Select(value string) error {
	step, ok := q.Current()
	if !ok {
		return ErrNotOnStep
	}
	if _, ok := step.option(value); !ok {
		return fmt.Errorf("%w: %q on %s", ErrUnknownOption, value, step.Field)
	}

	a := &q.Answers
	switch step.Field {
	case FieldStyles:
		a.Styles = toggle(a.Styles, value)
	case FieldCategories:
		a.Categories = toggle(a.Categories, value)
	case FieldBudgetTier:
		tier, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrUnknownOption, value)
		}
		if a.BudgetTier != nil && *a.BudgetTier == tier {
			a.BudgetTier = nil
		} else {
			a.BudgetTier = &tier
		}
	case FieldLocation:
		a.Location = setSingle(a.Location, value)
	case FieldPriority:
		a.Priority = setSingle(a.Priority, value)
	}
	return nil
}

// Selected reports whether value is currently chosen on step.
func (q *Quiz) Selected(step Step, value string) bool {
	a := q.Answers
	switch step.Field {
	case FieldStyles:
		return has(a.Styles, value)
	case FieldCategories:
		return has(a.Categories, value)
	case FieldBudgetTier:
		return a.BudgetTier != nil && strconv.Itoa(*a.BudgetTier) == value
	case FieldLocation:
		return a.Location != nil && *a.Location == value
	case FieldPriority:
		return a.Priority != nil && *a.Priority == value
	}
	return false
}

// ProgressLabel is "Step n of 5" or "Your Matches".
func (q *Quiz) ProgressLabel() string {
	if q.ShowResults {
		return "Your Matches"
	}
	return fmt.Sprintf("Step %d of %d", q.Step+1, len(Steps))
}

// ProgressPercent is the progress bar width; 100 on results.
func (q *Quiz) ProgressPercent() float64 {
	if q.ShowResults {
		return 100
	}
	return float64(q.Step+1) / float64(len(Steps)) * 100
}

func setSingle(cur *string, value string) *string {
	if cur != nil && *cur == value {
		return nil
	}
	return &value
}

func has(set []string, v string) bool {
	for _, x := range set {
		if x == v {
			return true
		}
	}
	return false
}

func toggle(set []string, v string) []string {
	out := make([]string, 0, len(set)+1)
	for _, x := range set {
		if x != v {
			out = append(out, x)
		}
	}
	if len(out) == len(set) {
		out = append(out, v)
	}
	return out
}
