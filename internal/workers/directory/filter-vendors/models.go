// internal/workers/directory/filter-vendors/models.go
package filtervendors

import "everaftr-workers/internal/directory"

// Facets accepted by Toggle.Facet.
const (
	FacetCategory   = "category"
	FacetBudgetTier = "budgetTier"
	FacetLocation   = "location"
	FacetStyle      = "style"
	FacetQuery      = "query"
)

type Input struct {
	Filter directory.FilterState `json:"filter"`
	Toggle *Toggle               `json:"toggle,omitempty"`
}

// Toggle applies one facet click before filtering. Sets toggle membership;
// category and query replace the current value.
type Toggle struct {
	Facet string `json:"facet"`
	Value string `json:"value"`
}

type Output struct {
	Vendors    []directory.Listing   `json:"vendors"`
	Count      int                   `json:"count"`
	CountLabel string                `json:"countLabel"`
	Filter     directory.FilterState `json:"filter"`
	Active     bool                  `json:"active"`
	Source     string                `json:"source"`
}
