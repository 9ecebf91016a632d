// internal/planner/budget.go
package planner

import (
	"math"
	"regexp"
	"strconv"

	"everaftr-workers/internal/models"
)

func seedBudget() []models.BudgetItem {
	return []models.BudgetItem{
		{ID: "b1", Category: "Venue & Food", Estimated: 250000},
		{ID: "b2", Category: "Attire (Gown/Barong)", Estimated: 80000},
		{ID: "b3", Category: "Photo & Video", Estimated: 120000},
		{ID: "b4", Category: "Rings & Jewelry", Estimated: 50000},
		{ID: "b5", Category: "Tokens for Sponsors", Estimated: 15000},
	}
}

type Budget struct {
	Items []models.BudgetItem `json:"items"`
}

func NewBudget() *Budget {
	return &Budget{Items: seedBudget()}
}

// SetActual commits a typed amount. Text that does not start with a number
// is taken as 0.
func (b *Budget) SetActual(id, raw string) (float64, error) {
	for i := range b.Items {
		if b.Items[i].ID == id {
			v := ParseAmount(raw)
			b.Items[i].Actual = v
			return v, nil
		}
	}
	return 0, &NotFoundError{Kind: "budget item", ID: id}
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseAmount reads the longest numeric prefix of raw after leading
// whitespace, like a browser number field. NaN, infinities and no number
// at all give 0.
func ParseAmount(raw string) float64 {
	i := 0
	for i < len(raw) && isSpace(raw[i]) {
		i++
	}
	m := leadingNumber.FindString(raw[i:])
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func (b *Budget) Totals() (estimated, actual float64) {
	for _, it := range b.Items {
		estimated += it.Estimated
		actual += it.Actual
	}
	return estimated, actual
}

// ItemPercent is actual over estimated in percent; estimated 0 counts as 1.
func ItemPercent(it models.BudgetItem) float64 {
	est := it.Estimated
	if est == 0 {
		est = 1
	}
	return it.Actual / est * 100
}

func OverBudget(it models.BudgetItem) bool {
	return it.Actual > it.Estimated
}

const (
	VarianceOver      = "Over Budget"
	VarianceRemaining = "Remaining"
)

// Variance is estimated minus actual, split into a label and magnitude.
type Variance struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
	Over   bool    `json:"over"`
}

func VarianceOf(it models.BudgetItem) Variance {
	diff := it.Estimated - it.Actual
	if diff < 0 {
		return Variance{Label: VarianceOver, Amount: -diff, Over: true}
	}
	return Variance{Label: VarianceRemaining, Amount: diff}
}

// OverallPercent is total actual over total estimated; 0 when nothing is estimated.
func (b *Budget) OverallPercent() float64 {
	est, act := b.Totals()
	if est == 0 {
		return 0
	}
	return act / est * 100
}

// ItemView is a budget row as displayed.
type ItemView struct {
	models.BudgetItem
	Percent          float64  `json:"percent"`
	BarPercent       float64  `json:"barPercent"`
	OverflowPercent  float64  `json:"overflowPercent"`
	OverBudget       bool     `json:"overBudget"`
	Variance         Variance `json:"variance"`
	ActualDisplay    string   `json:"actualDisplay"`
	EstimatedDisplay string   `json:"estimatedDisplay"`
	VarianceDisplay  string   `json:"varianceDisplay"`
}

// Summary is the whole budget view.
type Summary struct {
	Items              []ItemView `json:"items"`
	TotalEstimated     float64    `json:"totalEstimated"`
	TotalActual        float64    `json:"totalActual"`
	OverallPercent     int        `json:"overallPercent"`
	OverallBarPercent  float64    `json:"overallBarPercent"`
	TotalEstimatedText string     `json:"totalEstimatedDisplay"`
	TotalActualText    string     `json:"totalActualDisplay"`
}

func (b *Budget) Summary() Summary {
	est, act := b.Totals()
	overall := b.OverallPercent()
	s := Summary{
		Items:              make([]ItemView, 0, len(b.Items)),
		TotalEstimated:     est,
		TotalActual:        act,
		OverallPercent:     roundHalfUp(overall),
		OverallBarPercent:  math.Min(overall, 100),
		TotalEstimatedText: FormatPHP(est),
		TotalActualText:    FormatPHP(act),
	}
	for _, it := range b.Items {
		pct := ItemPercent(it)
		v := VarianceOf(it)
		s.Items = append(s.Items, ItemView{
			BudgetItem:       it,
			Percent:          pct,
			BarPercent:       math.Min(pct, 100),
			OverflowPercent:  math.Max(0, math.Min(pct-100, 50)),
			OverBudget:       OverBudget(it),
			Variance:         v,
			ActualDisplay:    FormatPHP(it.Actual),
			EstimatedDisplay: FormatPHP(it.Estimated),
			VarianceDisplay:  FormatPHP(v.Amount),
		})
	}
	return s
}
