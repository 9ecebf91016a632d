// internal/directory/filter.go
package directory

import (
	"strings"

	"everaftr-workers/internal/catalog"
	"everaftr-workers/internal/models"

	"golang.org/x/text/cases"
)

// FilterState is the directory facet selection. Empty sets and an empty query
// do not constrain the result.
type FilterState struct {
	Category    string   `json:"category"`
	BudgetTiers []int    `json:"budgetTiers"`
	Locations   []string `json:"locations"`
	Styles      []string `json:"styles"`
	Query       string   `json:"query"`
}

// IsActive reports whether any facet narrows the result.
func (f FilterState) IsActive() bool {
	return (f.Category != "" && f.Category != catalog.CategoryAll) ||
		len(f.BudgetTiers) > 0 || len(f.Locations) > 0 || len(f.Styles) > 0 || f.Query != ""
}

// Filter returns the vendors matching every active predicate, in source order.
func Filter(vendors []models.Vendor, f FilterState) []models.Vendor {
	m := newMatcher(f)
	out := make([]models.Vendor, 0, len(vendors))
	for _, v := range vendors {
		if m.match(v) {
			out = append(out, v)
		}
	}
	return out
}

type matcher struct {
	f      FilterState
	folder cases.Caser
	query  string
}

func newMatcher(f FilterState) *matcher {
	m := &matcher{f: f, folder: cases.Fold()}
	if f.Query != "" {
		m.query = m.folder.String(f.Query)
	}
	return m
}

func (m *matcher) match(v models.Vendor) bool {
	return m.category(v) && m.budget(v) && m.location(v) && m.style(v) && m.search(v)
}

func (m *matcher) category(v models.Vendor) bool {
	return m.f.Category == "" || m.f.Category == catalog.CategoryAll || v.Category == m.f.Category
}

func (m *matcher) budget(v models.Vendor) bool {
	return len(m.f.BudgetTiers) == 0 || contains(m.f.BudgetTiers, v.BudgetTier)
}

func (m *matcher) location(v models.Vendor) bool {
	return len(m.f.Locations) == 0 || contains(m.f.Locations, v.Location)
}

func (m *matcher) style(v models.Vendor) bool {
	if len(m.f.Styles) == 0 {
		return true
	}
	for _, s := range m.f.Styles {
		if v.HasTag(s) {
			return true
		}
	}
	return false
}

func (m *matcher) search(v models.Vendor) bool {
	if m.query == "" {
		return true
	}
	for _, field := range []string{v.Name, v.Location, v.Category} {
		if strings.Contains(m.folder.String(field), m.query) {
			return true
		}
	}
	return false
}

func contains[T comparable](set []T, v T) bool {
	for _, x := range set {
		if x == v {
			return true
		}
	}
	return false
}

// Toggle adds v to set when absent and removes it when present.
// The input slice is not modified.
func Toggle[T comparable](set []T, v T) []T {
	out := make([]T, 0, len(set)+1)
	found := false
	for _, x := range set {
		if x == v {
			found = true
			continue
		}
		out = append(out, x)
	}
	if !found {
		out = append(out, v)
	}
	return out
}
