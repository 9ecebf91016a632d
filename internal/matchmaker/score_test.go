package matchmaker

import (
	"testing"

	"everaftr-workers/internal/catalog"
	"everaftr-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int       { return &v }
func strp(v string) *string { return &v }

func answers(mutate func(a *models.MatchmakerAnswers)) models.MatchmakerAnswers {
	a := models.NewMatchmakerAnswers()
	mutate(&a)
	return a
}

func TestScore(t *testing.T) {
	v := models.Vendor{
		Category: "Venues", Location: "Bohol", BudgetTier: 3, Rating: 4.8,
		ReviewCount: 210, IsVerified: true, Tags: []string{"Beach", "Destination", "Intimate"},
	}

	tests := []struct {
		name string
		a    models.MatchmakerAnswers
		want float64
	}{
		{"no answers", answers(func(a *models.MatchmakerAnswers) {}), 0},
		{"style overlap of two", answers(func(a *models.MatchmakerAnswers) { a.Styles = []string{"Beach", "Intimate", "Civil"} }), 4},
		{"style without overlap excludes", answers(func(a *models.MatchmakerAnswers) { a.Styles = []string{"Church"} }), Excluded},
		{"exact budget", answers(func(a *models.MatchmakerAnswers) { a.BudgetTier = intp(3) }), 3},
		{"adjacent budget", answers(func(a *models.MatchmakerAnswers) { a.BudgetTier = intp(4) }), 1},
		{"far budget", answers(func(a *models.MatchmakerAnswers) { a.BudgetTier = intp(1) }), 0},
		{"location", answers(func(a *models.MatchmakerAnswers) { a.Location = strp("Bohol") }), 4},
		{"other location", answers(func(a *models.MatchmakerAnswers) { a.Location = strp("Boracay") }), 0},
		{"category", answers(func(a *models.MatchmakerAnswers) { a.Categories = []string{"Venues", "Rings"} }), 2},
		{"category miss excludes", answers(func(a *models.MatchmakerAnswers) { a.Categories = []string{"Rings"} }), Excluded},
		{"priority rating", answers(func(a *models.MatchmakerAnswers) { a.Priority = strp("rating") }), 9.6},
		{"priority reviews is not rounded", answers(func(a *models.MatchmakerAnswers) { a.Priority = strp("reviews") }), 4.2},
		{"priority budget", answers(func(a *models.MatchmakerAnswers) { a.Priority = strp("budget") }), 4},
		{"priority verified", answers(func(a *models.MatchmakerAnswers) { a.Priority = strp("verified") }), 5},
		{"combined", answers(func(a *models.MatchmakerAnswers) {
			a.Styles = []string{"Beach"}
			a.BudgetTier = intp(3)
			a.Location = strp("Bohol")
			a.Categories = []string{"Venues"}
			a.Priority = strp("verified")
		}), 2 + 3 + 4 + 2 + 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Score(v, tt.a), 1e-9)
		})
	}
}

func TestScore_UnverifiedGetsNoVerifiedBonus(t *testing.T) {
	v := models.Vendor{IsVerified: false}
	assert.Equal(t, 0.0, Score(v, answers(func(a *models.MatchmakerAnswers) { a.Priority = strp("verified") })))
}

func TestRank_BeachOnly(t *testing.T) {
	matches := Rank(catalog.Seed(), answers(func(a *models.MatchmakerAnswers) { a.Styles = []string{"Beach"} }))
	require.Len(t, matches, 2)
	for _, m := range matches {
		assert.True(t, m.HasTag("Beach"))
		assert.Equal(t, 2.0, m.Score)
	}
	// equal scores keep catalog order
	assert.Equal(t, "Bohol Beach Club", matches[0].Name)
	assert.Equal(t, "Crimson Boracay", matches[1].Name)
}

func TestRank_SortedAndNonNegative(t *testing.T) {
	a := answers(func(a *models.MatchmakerAnswers) {
		a.BudgetTier = intp(3)
		a.Priority = strp("reviews")
	})
	matches := Rank(catalog.Seed(), a)
	require.Len(t, matches, 8)
	for i, m := range matches {
		assert.GreaterOrEqual(t, m.Score, 0.0)
		if i > 0 {
			assert.GreaterOrEqual(t, matches[i-1].Score, m.Score)
		}
	}
	assert.Equal(t, "Juan Carlo the Caterer", matches[0].Name)
}

func TestRank_TierDistance(t *testing.T) {
	vendors := []models.Vendor{
		{ID: "a", BudgetTier: 2},
		{ID: "b", BudgetTier: 1},
	}
	matches := Rank(vendors, answers(func(a *models.MatchmakerAnswers) { a.BudgetTier = intp(3) }))
	require.Len(t, matches, 2)
	assert.Equal(t, 1.0, matches[0].Score)
	assert.Equal(t, 0.0, matches[1].Score)
}

func TestGroupByCategory(t *testing.T) {
	matches := []Match{
		{Vendor: models.Vendor{ID: "1", Category: "Venues"}, Score: 9},
		{Vendor: models.Vendor{ID: "2", Category: "Caterers"}, Score: 8},
		{Vendor: models.Vendor{ID: "3", Category: "Venues"}, Score: 7},
	}
	groups := GroupByCategory(matches)
	require.Len(t, groups, 2)
	assert.Equal(t, "Venues", groups[0].Category)
	assert.Len(t, groups[0].Matches, 2)
	assert.Equal(t, "3", groups[0].Matches[1].ID)
	assert.Equal(t, "Caterers", groups[1].Category)

	assert.Empty(t, GroupByCategory(nil))
}
