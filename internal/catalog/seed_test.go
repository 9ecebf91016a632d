package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	vendors := Seed()
	require.Len(t, vendors, 8)

	for _, v := range vendors {
		assert.GreaterOrEqual(t, v.BudgetTier, 1, v.Name)
		assert.LessOrEqual(t, v.BudgetTier, 4, v.Name)
		assert.Len(t, []rune(v.PriceRange), v.BudgetTier, v.Name)
		assert.Contains(t, Locations(), v.Location, v.Name)
		assert.True(t, IsCategory(v.Category), v.Name)
	}

	assert.Equal(t, "Palazzo Verde", vendors[0].Name)
	assert.NotEmpty(t, vendors[0].VirtualTourURL)
	assert.Empty(t, vendors[1].VirtualTourURL)
}

func TestSeed_ReturnsIndependentCopies(t *testing.T) {
	a := Seed()
	a[0].Name = "changed"
	a[0].Tags[0] = "changed"

	b := Seed()
	assert.Equal(t, "Palazzo Verde", b[0].Name)
	assert.Equal(t, "Garden", b[0].Tags[0])
}

func TestLocations(t *testing.T) {
	locs := Locations()
	assert.Len(t, locs, 9)
	assert.Equal(t, "Metro Manila (North)", locs[0])
	assert.Equal(t, "Bohol", locs[8])
}

func TestStaticSource(t *testing.T) {
	src := NewStaticSource()
	assert.Equal(t, "static", src.Name())

	vendors, err := src.Vendors(context.Background())
	require.NoError(t, err)
	assert.Len(t, vendors, 8)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = src.Vendors(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
