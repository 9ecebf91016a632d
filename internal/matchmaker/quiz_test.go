package matchmaker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuiz_Initial(t *testing.T) {
	q := NewQuiz()
	assert.Equal(t, 0, q.Step)
	assert.Equal(t, PhaseQuiz, q.Phase())
	assert.Empty(t, q.Answers.Styles)
	assert.Nil(t, q.Answers.BudgetTier)
	assert.Equal(t, "Step 1 of 5", q.ProgressLabel())
	assert.InDelta(t, 20.0, q.ProgressPercent(), 1e-9)
}

func TestQuiz_Navigation(t *testing.T) {
	q := NewQuiz()

	q.Back()
	assert.Equal(t, 0, q.Step, "back at step 0 is a no-op")

	for i := 0; i < 4; i++ {
		q.Next()
	}
	assert.Equal(t, 4, q.Step)
	assert.Equal(t, PhaseQuiz, q.Phase())

	q.Next()
	assert.Equal(t, PhaseResults, q.Phase())
	assert.Equal(t, "Your Matches", q.ProgressLabel())
	_, ok := q.Current()
	assert.False(t, ok)

	q.Next()
	assert.Equal(t, PhaseResults, q.Phase(), "next on results stays")

	q.Back()
	assert.Equal(t, PhaseQuiz, q.Phase())
	assert.Equal(t, 4, q.Step, "back from results returns to the last step")

	q.Back()
	assert.Equal(t, 3, q.Step)
}

func TestQuiz_NextAdvancesWithoutAnswers(t *testing.T) {
	q := NewQuiz()
	q.Next()
	assert.Equal(t, 1, q.Step)
	assert.Empty(t, q.Answers.Styles)
}

func TestQuiz_SelectMulti(t *testing.T) {
	q := NewQuiz()
	require.NoError(t, q.Select("Beach"))
	require.NoError(t, q.Select("Garden"))
	assert.Equal(t, []string{"Beach", "Garden"}, q.Answers.Styles)

	step, _ := q.Current()
	assert.True(t, q.Selected(step, "Beach"))

	require.NoError(t, q.Select("Beach"))
	assert.Equal(t, []string{"Garden"}, q.Answers.Styles)
	assert.False(t, q.Selected(step, "Beach"))
}

func TestQuiz_SelectSingleTogglesOff(t *testing.T) {
	tests := []struct {
		name  string
		step  int
		value string
		other string
		get   func(q *Quiz) bool
	}{
		{"budget tier", 1, "3", "2", func(q *Quiz) bool { return q.Answers.BudgetTier != nil }},
		{"location", 2, "Bohol", "Boracay", func(q *Quiz) bool { return q.Answers.Location != nil }},
		{"priority", 4, "rating", "verified", func(q *Quiz) bool { return q.Answers.Priority != nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQuiz()
			q.Step = tt.step
			step, _ := q.Current()

			require.NoError(t, q.Select(tt.value))
			assert.True(t, tt.get(q))
			assert.True(t, q.Selected(step, tt.value))

			require.NoError(t, q.Select(tt.other))
			assert.True(t, q.Selected(step, tt.other))
			assert.False(t, q.Selected(step, tt.value))

			require.NoError(t, q.Select(tt.other))
			assert.False(t, tt.get(q), "re-selecting clears the field")
		})
	}
}

func TestQuiz_SelectBudgetStoresNumber(t *testing.T) {
	q := NewQuiz()
	q.Step = 1
	require.NoError(t, q.Select("4"))
	require.NotNil(t, q.Answers.BudgetTier)
	assert.Equal(t, 4, *q.Answers.BudgetTier)
}

func TestQuiz_SelectRejections(t *testing.T) {
	q := NewQuiz()
	assert.ErrorIs(t, q.Select("Underwater"), ErrUnknownOption)

	q.ShowResults = true
	assert.ErrorIs(t, q.Select("Beach"), ErrNotOnStep)
}

func TestQuiz_Reset(t *testing.T) {
	q := NewQuiz()
	require.NoError(t, q.Select("Beach"))
	q.Next()
	require.NoError(t, q.Select("2"))
	q.ShowResults = true

	q.Reset()
	assert.Equal(t, NewQuiz(), q)
}

func TestSteps(t *testing.T) {
	require.Len(t, Steps, 5)
	fields := []Field{FieldStyles, FieldBudgetTier, FieldLocation, FieldCategories, FieldPriority}
	multi := []bool{true, false, false, true, false}
	for i, s := range Steps {
		assert.Equal(t, fields[i], s.Field)
		assert.Equal(t, multi[i], s.Multi)
		assert.NotEmpty(t, s.Options)
	}
	assert.Len(t, Steps[2].Options, 9)
}
