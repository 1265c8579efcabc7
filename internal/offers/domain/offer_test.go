package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func offerIDs(offers []Offer) []string {
	ids := make([]string, 0, len(offers))
	for _, o := range offers {
		ids = append(ids, o.OfferID)
	}
	return ids
}

func TestCatalog(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	offers := Catalog(now)

	require.Len(t, offers, 4)
	assert.Equal(t, []string{"OFFER-001", "OFFER-002", "OFFER-003", "OFFER-004"}, offerIDs(offers))

	assert.Equal(t, "Spring Sale - 30% Off", offers[0].Title)
	assert.Equal(t, 30, offers[0].DiscountPercentage)
	assert.Equal(t, "100.00", offers[0].MinOrderAmount.StringFixed(2))
	assert.Equal(t, "50.00", offers[0].MaxDiscount.StringFixed(2))
	assert.Equal(t, now.Add(7*24*time.Hour), offers[0].ValidUntil)
	assert.Equal(t, "Electronics", offers[0].Category)

	assert.Equal(t, now.Add(5*24*time.Hour), offers[1].ValidUntil)
	assert.Equal(t, CategoryAll, offers[2].Category)
	assert.Equal(t, 0, offers[2].DiscountPercentage)
	assert.Equal(t, now.Add(12*time.Hour), offers[3].ValidUntil)
	assert.Equal(t, "Home & Kitchen", offers[3].Category)

	for _, offer := range offers {
		assert.True(t, offer.Active, offer.OfferID)
		assert.GreaterOrEqual(t, offer.DiscountPercentage, 0)
	}
}

func TestApplicable(t *testing.T) {
	offers := Catalog(time.Now())

	tests := []struct {
		name     string
		amount   string
		category string
		expected []string
	}{
		{name: "electronics at 100", amount: "100", category: "Electronics", expected: []string{"OFFER-001", "OFFER-003"}},
		{name: "fashion at 40", amount: "40", category: "Fashion", expected: []string{}},
		{name: "all at 40", amount: "40", category: CategoryAll, expected: []string{}},
		{name: "fashion at 75", amount: "75", category: "Fashion", expected: []string{"OFFER-002", "OFFER-003"}},
		{name: "threshold is inclusive", amount: "75.00", category: "Books", expected: []string{"OFFER-003"}},
		{name: "just below threshold", amount: "74.99", category: "Books", expected: []string{}},
		{
			name:     "home and kitchen at 150",
			amount:   "150",
			category: "Home & Kitchen",
			expected: []string{"OFFER-003", "OFFER-004"},
		},
		{name: "category match is exact", amount: "500", category: "electronics", expected: []string{"OFFER-003"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Applicable(offers, decimal.RequireFromString(tt.amount), tt.category)
			assert.Equal(t, tt.expected, offerIDs(result))
		})
	}
}

func TestApplicable_InactiveOffersExcluded(t *testing.T) {
	offers := Catalog(time.Now())
	offers[2].Active = false

	result := Applicable(offers, decimal.RequireFromString("1000"), "Books")
	assert.Empty(t, result)
}

func TestBest(t *testing.T) {
	offers := Catalog(time.Now())

	t.Run("highest discount wins", func(t *testing.T) {
		best, found := Best(Applicable(offers, decimal.RequireFromString("100"), "Electronics"))
		require.True(t, found)
		assert.Equal(t, "OFFER-001", best.OfferID)
	})

	t.Run("none applicable", func(t *testing.T) {
		_, found := Best(Applicable(offers, decimal.RequireFromString("40"), CategoryAll))
		assert.False(t, found)
	})

	t.Run("first maximum wins on ties", func(t *testing.T) {
		tied := []Offer{
			{OfferID: "A", DiscountPercentage: 20},
			{OfferID: "B", DiscountPercentage: 25},
			{OfferID: "C", DiscountPercentage: 25},
		}
		best, found := Best(tied)
		require.True(t, found)
		assert.Equal(t, "B", best.OfferID)
	})

	t.Run("zero discount offer is still best when alone", func(t *testing.T) {
		best, found := Best(Applicable(offers, decimal.RequireFromString("80"), "Books"))
		require.True(t, found)
		assert.Equal(t, "OFFER-003", best.OfferID)
	})
}
