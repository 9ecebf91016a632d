// internal/models/vendor.go
package models

import "strings"

// Vendor is a read-only directory listing.
type Vendor struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Location       string   `json:"location"`
	PriceRange     string   `json:"priceRange"`
	BudgetTier     int      `json:"budgetTier"`
	Rating         float64  `json:"rating"`
	ReviewCount    int      `json:"reviewCount"`
	ImageURL       string   `json:"imageUrl"`
	IsVerified     bool     `json:"isVerified"`
	Tags           []string `json:"tags"`
	VirtualTourURL string   `json:"virtualTourUrl,omitempty"`
}

const (
	MinBudgetTier = 1
	MaxBudgetTier = 4
)

// PriceRangeFor renders a tier as repeated peso signs.
func PriceRangeFor(tier int) string {
	if tier < MinBudgetTier {
		return ""
	}
	return strings.Repeat("₱", tier)
}

// HasTag reports whether the vendor carries tag (exact match).
func (v Vendor) HasTag(tag string) bool {
	for _, t := range v.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
