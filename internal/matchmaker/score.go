// internal/matchmaker/score.go
package matchmaker

import (
	"sort"

	"everaftr-workers/internal/models"
)

// Excluded is the score of a vendor that fails a hard preference.
const Excluded = -1.0

// Score rates v against the answers.
//
// Styles and categories are hard filters when answered; budget, location and
// the single priority bonus only add points.
func Score(v models.Vendor, a models.MatchmakerAnswers) float64 {
	score := 0.0

	if len(a.Styles) > 0 {
		overlap := 0
		for _, s := range a.Styles {
			if v.HasTag(s) {
				overlap++
			}
		}
		if overlap == 0 {
			return Excluded
		}
		score += float64(overlap * 2)
	}

	if a.BudgetTier != nil {
		switch diff := v.BudgetTier - *a.BudgetTier; {
		case diff == 0:
			score += 3
		case diff == 1 || diff == -1:
			score++
		}
	}

	if a.Location != nil && v.Location == *a.Location {
		score += 4
	}

	if len(a.Categories) > 0 {
		if !has(a.Categories, v.Category) {
			return Excluded
		}
		score += 2
	}

	if a.Priority != nil {
		switch *a.Priority {
		case models.PriorityRating:
			score += v.Rating * 2
		case models.PriorityReviews:
			score += float64(v.ReviewCount) / 50
		case models.PriorityBudget:
			score += float64((5 - v.BudgetTier) * 2)
		case models.PriorityVerified:
			if v.IsVerified {
				score += 5
			}
		}
	}

	return score
}

// Match is a scored vendor.
type Match struct {
	models.Vendor
	Score float64 `json:"score"`
}

// Rank scores every vendor, drops the excluded ones and sorts by descending
// score. Ties keep catalog order.
func Rank(vendors []models.Vendor, a models.MatchmakerAnswers) []Match {
	matches := make([]Match, 0, len(vendors))
	for _, v := range vendors {
		s := Score(v, a)
		if s < 0 {
			continue
		}
		matches = append(matches, Match{Vendor: v, Score: s})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// Group is one category section of the results screen.
type Group struct {
	Category string  `json:"category"`
	Matches  []Match `json:"matches"`
}

// GroupByCategory keeps rank order inside each group and orders groups by
// the first appearance of their category.
func GroupByCategory(matches []Match) []Group {
	index := map[string]int{}
	var groups []Group
	for _, m := range matches {
		i, ok := index[m.Category]
		if !ok {
			i = len(groups)
			index[m.Category] = i
			groups = append(groups, Group{Category: m.Category})
		}
		groups[i].Matches = append(groups[i].Matches, m)
	}
	return groups
}
