// internal/workers/directory/filter-vendors/handler_test.go
package filtervendors

import (
	"context"
	stderrors "errors"
	"testing"

	"everaftr-workers/internal/catalog"
	"everaftr-workers/internal/common/camunda"
	"everaftr-workers/internal/common/errors"
	"everaftr-workers/internal/common/logger"
	"everaftr-workers/internal/directory"
	"everaftr-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

type MockSource struct {
	mock.Mock
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) Vendors(ctx context.Context) ([]models.Vendor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Vendor), args.Error(1)
}

func newTestHandler(t *testing.T, source catalog.Source) *Handler {
	return NewHandler(DefaultConfig(), camunda.Deps{}, source, logger.NewTestLogger(t))
}

func ids(listings []directory.Listing) []string {
	out := make([]string, len(listings))
	for i, l := range listings {
		out[i] = l.ID
	}
	return out
}

func errorCode(t *testing.T, err error) errors.ErrorCode {
	t.Helper()
	stdErr, ok := errors.AsStandardError(err)
	require.True(t, ok, "expected StandardError, got %v", err)
	return stdErr.Code
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_Filters(t *testing.T) {
	tests := []struct {
		name      string
		input     Input
		wantIDs   []string
		wantLabel string
		active    bool
	}{
		{
			name:      "empty filter returns the full catalog",
			input:     Input{},
			wantIDs:   []string{"1", "2", "3", "4", "5", "6", "7", "8"},
			wantLabel: "8 Suppliers",
		},
		{
			name:      "category All is inactive",
			input:     Input{Filter: directory.FilterState{Category: "All"}},
			wantIDs:   []string{"1", "2", "3", "4", "5", "6", "7", "8"},
			wantLabel: "8 Suppliers",
		},
		{
			name:      "category and budget",
			input:     Input{Filter: directory.FilterState{Category: "Venues", BudgetTiers: []int{3}}},
			wantIDs:   []string{"1", "5"},
			wantLabel: "2 Suppliers",
			active:    true,
		},
		{
			name:      "style intersection",
			input:     Input{Filter: directory.FilterState{Styles: []string{"Beach"}}},
			wantIDs:   []string{"5", "7"},
			wantLabel: "2 Suppliers",
			active:    true,
		},
		{
			name:      "query is case insensitive over name location and category",
			input:     Input{Filter: directory.FilterState{Query: "TAGAYTAY"}},
			wantIDs:   []string{"3"},
			wantLabel: "1 Supplier",
			active:    true,
		},
		{
			name:      "no match",
			input:     Input{Filter: directory.FilterState{Category: "Rings"}},
			wantIDs:   []string{},
			wantLabel: "0 Suppliers",
			active:    true,
		},
		{
			name: "toggle adds a location",
			input: Input{
				Filter: directory.FilterState{Locations: []string{"Bohol"}},
				Toggle: &Toggle{Facet: FacetLocation, Value: "Boracay"},
			},
			wantIDs:   []string{"5", "7"},
			wantLabel: "2 Suppliers",
			active:    true,
		},
		{
			name: "toggle removes the last budget tier",
			input: Input{
				Filter: directory.FilterState{BudgetTiers: []int{1}},
				Toggle: &Toggle{Facet: FacetBudgetTier, Value: "1"},
			},
			wantIDs:   []string{"1", "2", "3", "4", "5", "6", "7", "8"},
			wantLabel: "8 Suppliers",
		},
	}

	h := newTestHandler(t, catalog.NewStaticSource())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := h.Execute(context.Background(), &tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, ids(out.Vendors))
			assert.Equal(t, len(tt.wantIDs), out.Count)
			assert.Equal(t, tt.wantLabel, out.CountLabel)
			assert.Equal(t, tt.active, out.Active)
			assert.Equal(t, "static", out.Source)
		})
	}
}

func TestHandler_Execute_Badges(t *testing.T) {
	h := newTestHandler(t, catalog.NewStaticSource())
	out, err := h.Execute(context.Background(), &Input{Filter: directory.FilterState{Locations: []string{"Luzon (Central)", "Boracay"}}})
	require.NoError(t, err)
	require.Len(t, out.Vendors, 2)

	boracay, central := out.Vendors[0], out.Vendors[1]
	assert.Equal(t, "7", boracay.ID)
	assert.True(t, boracay.Destination)
	assert.False(t, boracay.SulitPick)

	assert.Equal(t, "8", central.ID)
	assert.True(t, central.SulitPick)
	assert.True(t, central.Intimate)
}

func TestHandler_Execute_EchoesNormalizedFilter(t *testing.T) {
	h := newTestHandler(t, catalog.NewStaticSource())
	out, err := h.Execute(context.Background(), &Input{Toggle: &Toggle{Facet: FacetStyle, Value: "Garden"}})
	require.NoError(t, err)

	assert.Equal(t, "All", out.Filter.Category)
	assert.Equal(t, []string{"Garden"}, out.Filter.Styles)
	assert.Equal(t, []int{}, out.Filter.BudgetTiers)
	assert.Equal(t, []string{}, out.Filter.Locations)
}

func TestHandler_Execute_UnseededCategory(t *testing.T) {
	source := &MockSource{}
	source.On("Vendors", mock.Anything).Return([]models.Vendor{
		{ID: "v1", Name: "Bloom & Vine", Category: "Florists", BudgetTier: 2},
	}, nil)
	h := newTestHandler(t, source)

	out, err := h.Execute(context.Background(), &Input{Filter: directory.FilterState{Category: "Florists"}})
	require.NoError(t, err)
	require.Equal(t, 1, out.Count)
	assert.Equal(t, "v1", out.Vendors[0].ID)

	out, err = h.Execute(context.Background(), &Input{Filter: directory.FilterState{Category: "Bakers"}})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Count)
	assert.Empty(t, out.Vendors)
}

// ==========================
// Validation Tests
// ==========================

func TestHandler_Execute_InvalidFilter(t *testing.T) {
	tests := []struct {
		name  string
		input Input
	}{
		{"tier below range", Input{Filter: directory.FilterState{BudgetTiers: []int{0}}}},
		{"tier above range", Input{Filter: directory.FilterState{BudgetTiers: []int{5}}}},
		{"non numeric tier toggle", Input{Toggle: &Toggle{Facet: FacetBudgetTier, Value: "cheap"}}},
		{"unknown facet", Input{Toggle: &Toggle{Facet: "rating", Value: "5"}}},
	}

	source := &MockSource{}
	h := newTestHandler(t, source)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.Execute(context.Background(), &tt.input)
			assert.Equal(t, errors.ErrCodeInvalidFilterFormat, errorCode(t, err))
		})
	}
	source.AssertNotCalled(t, "Vendors", mock.Anything)
}

// ==========================
// Catalog Error Tests
// ==========================

func TestHandler_Execute_CatalogErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode errors.ErrorCode
	}{
		{
			name:     "standard errors pass through",
			err:      errors.NewSearchQueryFailedError("vendors", stderrors.New("shard failure")),
			wantCode: errors.ErrCodeSearchQueryFailed,
		},
		{
			name:     "plain errors become catalog unavailable",
			err:      stderrors.New("dial tcp: refused"),
			wantCode: errors.ErrCodeCatalogUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := &MockSource{}
			source.On("Vendors", mock.Anything).Return(nil, tt.err)

			_, err := newTestHandler(t, source).Execute(context.Background(), &Input{})
			assert.Equal(t, tt.wantCode, errorCode(t, err))
			source.AssertExpectations(t)
		})
	}
}
