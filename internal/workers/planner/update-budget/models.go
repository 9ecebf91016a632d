// internal/workers/planner/update-budget/models.go
package updatebudget

import (
	"encoding/json"
	"fmt"
	"strconv"

	"everaftr-workers/internal/planner"
)

type Input struct {
	SessionID string `json:"sessionId"`
	ItemID    string `json:"itemId"`
	Actual    Amount `json:"actual"`
}

// Amount is the typed field contents. Process variables may carry it as a
// JSON string or a number; both are parsed like a number field.
type Amount string

func (a *Amount) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*a = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("actual must be a string or number: %w", err)
	}
	*a = Amount(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

type Output struct {
	SessionID string          `json:"sessionId"`
	ItemID    string          `json:"itemId"`
	Actual    float64         `json:"actual"`
	Budget    planner.Summary `json:"budget"`
}
