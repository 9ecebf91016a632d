// internal/directory/listing.go
package directory

import (
	"fmt"

	"everaftr-workers/internal/models"
)

var destinationLocations = map[string]bool{
	"Boracay":  true,
	"Tagaytay": true,
	"Bohol":    true,
}

// Listing is a vendor with its directory badges.
type Listing struct {
	models.Vendor
	SulitPick   bool `json:"sulitPick"`
	Destination bool `json:"destination"`
	Intimate    bool `json:"intimate"`
	HasTour     bool `json:"hasTour"`
}

func Annotate(v models.Vendor) Listing {
	return Listing{
		Vendor:      v,
		SulitPick:   v.BudgetTier <= 2,
		Destination: destinationLocations[v.Location],
		Intimate:    v.HasTag("Intimate"),
		HasTour:     v.VirtualTourURL != "",
	}
}

func AnnotateAll(vendors []models.Vendor) []Listing {
	out := make([]Listing, len(vendors))
	for i, v := range vendors {
		out[i] = Annotate(v)
	}
	return out
}

// CountLabel renders "1 Supplier" / "3 Suppliers".
func CountLabel(n int) string {
	if n == 1 {
		return "1 Supplier"
	}
	return fmt.Sprintf("%d Suppliers", n)
}
