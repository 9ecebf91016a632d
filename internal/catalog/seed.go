// internal/catalog/seed.go
package catalog

import "everaftr-workers/internal/models"

// CategoryAll disables the category predicate.
const CategoryAll = "All"

// Categories lists the directory categories in display order.
var Categories = []string{CategoryAll, "Venues", "Caterers", "Photographers", "Bridal Gowns", "Barongs", "Rings"}

// Styles lists the wedding style tags offered as facets.
var Styles = []string{"Civil", "Church", "Garden", "Beach", "Destination", "Intimate"}

// Region groups concrete locations under a heading.
type Region struct {
	Title     string   `json:"title"`
	Locations []string `json:"locations"`
}

var Regions = []Region{
	{Title: "Metro Manila", Locations: []string{"Metro Manila (North)", "Metro Manila (South)"}},
	{Title: "Luzon", Locations: []string{"Luzon (North)", "Luzon (Central)", "Tagaytay"}},
	{Title: "Visayas & Mindanao", Locations: []string{"Visayas", "Mindanao", "Boracay", "Bohol"}},
}

// Locations flattens Regions in order.
func Locations() []string {
	var out []string
	for _, r := range Regions {
		out = append(out, r.Locations...)
	}
	return out
}

// IsCategory reports whether c is a known category, including All.
func IsCategory(c string) bool {
	for _, known := range Categories {
		if known == c {
			return true
		}
	}
	return false
}

const (
	imageBase  = "https://images.unsplash.com/"
	imageQuery = "?auto=format&fit=crop&q=80&w=1200"
	tourURL    = "https://www.youtube.com/embed/dQw4w9WgXcQ"
)

func image(id string) string { return imageBase + id + imageQuery }

// Seed returns a fresh copy of the compiled-in vendor list.
func Seed() []models.Vendor {
	vendors := []models.Vendor{
		{
			ID: "1", Name: "Palazzo Verde", Category: "Venues", Location: "Metro Manila (South)",
			BudgetTier: 3, Rating: 4.9, ReviewCount: 124,
			ImageURL: image("photo-1519167758481-83f550bb49b3"),
			IsVerified: true, Tags: []string{"Garden", "Traditional", "Grand", "Church"},
			VirtualTourURL: tourURL,
		},
		{
			ID: "2", Name: "Juan Carlo the Caterer", Category: "Caterers", Location: "Metro Manila (North)",
			BudgetTier: 3, Rating: 4.8, ReviewCount: 350,
			ImageURL: image("photo-1555244162-803834f70033"),
			IsVerified: true, Tags: []string{"Luxury", "Gourmet", "Filipino Cuisine", "Church", "Civil"},
		},
		{
			ID: "3", Name: "The Hills Tagaytay", Category: "Venues", Location: "Tagaytay",
			BudgetTier: 2, Rating: 4.7, ReviewCount: 95,
			ImageURL: image("photo-1464366400600-7168b8af9bc3"),
			IsVerified: true, Tags: []string{"Scenic", "Cold Weather", "Nature", "Intimate", "Garden"},
		},
		{
			ID: "4", Name: "Rosa Clara Philippines", Category: "Bridal Gowns", Location: "Metro Manila (South)",
			BudgetTier: 4, Rating: 4.9, ReviewCount: 88,
			ImageURL: image("photo-1594553703248-6a59c5bcc31e"),
			IsVerified: true, Tags: []string{"Designer", "International", "Classic", "Church", "Civil"},
		},
		{
			ID: "5", Name: "Bohol Beach Club", Category: "Venues", Location: "Bohol",
			BudgetTier: 3, Rating: 4.8, ReviewCount: 210,
			ImageURL: image("photo-1515934751635-c81c6bc9a2d8"),
			IsVerified: true, Tags: []string{"Beach", "Destination", "Romantic", "Intimate"},
			VirtualTourURL: tourURL,
		},
		{
			ID: "6", Name: "Northern Lights Photo", Category: "Photographers", Location: "Luzon (North)",
			BudgetTier: 2, Rating: 4.6, ReviewCount: 54,
			ImageURL: image("photo-1537633552985-df8429e8048b"),
			IsVerified: false, Tags: []string{"Candid", "Outdoors", "Intimate"},
		},
		{
			ID: "7", Name: "Crimson Boracay", Category: "Venues", Location: "Boracay",
			BudgetTier: 4, Rating: 4.9, ReviewCount: 180,
			ImageURL: image("photo-1544124499-58912cbddaad"),
			IsVerified: true, Tags: []string{"Luxury", "Beach", "Modern", "Destination"},
		},
		{
			ID: "8", Name: "Central Luzon Catering", Category: "Caterers", Location: "Luzon (Central)",
			BudgetTier: 1, Rating: 4.5, ReviewCount: 38,
			ImageURL: image("photo-1504674900247-0877df9cc836"),
			IsVerified: true, Tags: []string{"Affordable", "Family Style", "Intimate", "Civil"},
		},
	}
	for i := range vendors {
		vendors[i].PriceRange = models.PriceRangeFor(vendors[i].BudgetTier)
	}
	return vendors
}
