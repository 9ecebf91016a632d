// internal/matchmaker/steps.go
package matchmaker

import "everaftr-workers/internal/models"

// Field names an answer slot.
type Field string

const (
	FieldStyles     Field = "styles"
	FieldBudgetTier Field = "budgetTier"
	FieldLocation   Field = "location"
	FieldCategories Field = "categories"
	FieldPriority   Field = "priority"
)

type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Step is one quiz screen.
type Step struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Field    Field    `json:"field"`
	Multi    bool     `json:"multi"`
	Options  []Option `json:"options"`
}

func (s Step) option(value string) (Option, bool) {
	for _, o := range s.Options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

func same(values ...string) []Option {
	out := make([]Option, len(values))
	for i, v := range values {
		out[i] = Option{Label: v, Value: v}
	}
	return out
}

// Steps is the fixed quiz, in order.
var Steps = []Step{
	{
		Title:    "What's your wedding vibe?",
		Subtitle: "Select all that feel like you.",
		Field:    FieldStyles,
		Multi:    true,
		Options:  same("Civil", "Church", "Garden", "Beach", "Destination", "Intimate"),
	},
	{
		Title:    "What's your budget feel?",
		Subtitle: "This helps us find the right price range.",
		Field:    FieldBudgetTier,
		Options: []Option{
			{Label: "₱ Budget", Value: "1"},
			{Label: "₱₱ Mid-Range", Value: "2"},
			{Label: "₱₱₱ Premium", Value: "3"},
			{Label: "₱₱₱₱ Luxury", Value: "4"},
		},
	},
	{
		Title:    "Where's the celebration?",
		Subtitle: "Pick your dream location.",
		Field:    FieldLocation,
		Options: same(
			"Metro Manila (North)", "Metro Manila (South)", "Luzon (North)", "Luzon (Central)",
			"Tagaytay", "Boracay", "Bohol", "Visayas", "Mindanao",
		),
	},
	{
		Title:    "What do you still need?",
		Subtitle: "Select the vendors you're looking for.",
		Field:    FieldCategories,
		Multi:    true,
		Options:  same("Venues", "Caterers", "Photographers", "Bridal Gowns", "Barongs", "Rings"),
	},
	{
		Title:    "What matters most to you?",
		Subtitle: "We'll prioritize results based on this.",
		Field:    FieldPriority,
		Options: []Option{
			{Label: "Highest Rated", Value: models.PriorityRating},
			{Label: "Most Reviewed", Value: models.PriorityReviews},
			{Label: "Budget-Friendly (Sulit)", Value: models.PriorityBudget},
			{Label: "Verified Vendors", Value: models.PriorityVerified},
		},
	},
}
