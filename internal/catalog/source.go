// internal/catalog/source.go
package catalog

import (
	"context"

	"everaftr-workers/internal/models"
)

// Source supplies the vendor list. Implementations are read-only and must
// return vendors in a stable order.
type Source interface {
	Name() string
	Vendors(ctx context.Context) ([]models.Vendor, error)
}

// StaticSource serves the compiled-in seed.
type StaticSource struct{}

func NewStaticSource() *StaticSource { return &StaticSource{} }

func (s *StaticSource) Name() string { return "static" }

func (s *StaticSource) Vendors(ctx context.Context) ([]models.Vendor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Seed(), nil
}

// normalize fills derived fields a collaborator may omit.
func normalize(vendors []models.Vendor) []models.Vendor {
	for i := range vendors {
		if vendors[i].PriceRange == "" {
			vendors[i].PriceRange = models.PriceRangeFor(vendors[i].BudgetTier)
		}
		if vendors[i].Tags == nil {
			vendors[i].Tags = []string{}
		}
	}
	return vendors
}
