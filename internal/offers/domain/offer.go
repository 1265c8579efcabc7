// Package domain defines the promotional offer catalog. Offers are value objects
// regenerated from a static table on every read, with validity windows relative
// to the time of the read.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryAll is the offer category that matches any requested category.
const CategoryAll = "All"

// Offer is a promotional discount.
type Offer struct {
	OfferID            string
	Title              string
	Description        string
	DiscountPercentage int
	MinOrderAmount     decimal.Decimal
	// MaxDiscount is informational and not enforced by offer selection.
	MaxDiscount decimal.Decimal
	// ValidUntil is informational and not filtered on.
	ValidUntil time.Time
	Category   string
	Active     bool
}

// AppliesTo reports whether the offer applies to an order of the given amount and category.
func (o Offer) AppliesTo(amount decimal.Decimal, category string) bool {
	return o.Active &&
		amount.GreaterThanOrEqual(o.MinOrderAmount) &&
		(o.Category == CategoryAll || o.Category == category)
}

type offerTemplate struct {
	offerID            string
	title              string
	description        string
	discountPercentage int
	minOrderAmount     string
	maxDiscount        string
	validFor           time.Duration
	category           string
	active             bool
}

var catalog = []offerTemplate{
	{
		offerID:            "OFFER-001",
		title:              "Spring Sale - 30% Off",
		description:        "Get 30% off on all electronics. Limited time offer!",
		discountPercentage: 30,
		minOrderAmount:     "100.00",
		maxDiscount:        "50.00",
		validFor:           7 * 24 * time.Hour,
		category:           "Electronics",
		active:             true,
	},
	{
		offerID:            "OFFER-002",
		title:              "Buy 1 Get 1 Free",
		description:        "Buy any product and get another one free! Same or lesser value.",
		discountPercentage: 50,
		minOrderAmount:     "50.00",
		maxDiscount:        "100.00",
		validFor:           5 * 24 * time.Hour,
		category:           "Fashion",
		active:             true,
	},
	{
		offerID:            "OFFER-003",
		title:              "Free Shipping",
		description:        "Free shipping on orders above $75. No code needed!",
		discountPercentage: 0,
		minOrderAmount:     "75.00",
		maxDiscount:        "15.00",
		validFor:           30 * 24 * time.Hour,
		category:           CategoryAll,
		active:             true,
	},
	{
		offerID:            "OFFER-004",
		title:              "Flash Deal - 40% Off",
		description:        "Flash sale! 40% off on selected items. Hurry, limited stock!",
		discountPercentage: 40,
		minOrderAmount:     "150.00",
		maxDiscount:        "75.00",
		validFor:           12 * time.Hour,
		category:           "Home & Kitchen",
		active:             true,
	},
}

// Catalog returns the offer catalog in declaration order, with validity windows
// computed from now.
func Catalog(now time.Time) []Offer {
	offers := make([]Offer, 0, len(catalog))
	for _, t := range catalog {
		offers = append(offers, Offer{
			OfferID:            t.offerID,
			Title:              t.title,
			Description:        t.description,
			DiscountPercentage: t.discountPercentage,
			MinOrderAmount:     decimal.RequireFromString(t.minOrderAmount),
			MaxDiscount:        decimal.RequireFromString(t.maxDiscount),
			ValidUntil:         now.Add(t.validFor),
			Category:           t.category,
			Active:             t.active,
		})
	}
	return offers
}

// Applicable filters offers that apply to the amount and category, keeping their order.
func Applicable(offers []Offer, amount decimal.Decimal, category string) []Offer {
	applicable := make([]Offer, 0, len(offers))
	for _, offer := range offers {
		if offer.AppliesTo(amount, category) {
			applicable = append(applicable, offer)
		}
	}
	return applicable
}

// Best returns the offer with the highest discount percentage. Ties resolve to the
// first offer in order. The boolean is false when offers is empty.
func Best(offers []Offer) (Offer, bool) {
	if len(offers) == 0 {
		return Offer{}, false
	}

	best := offers[0]
	for _, offer := range offers[1:] {
		if offer.DiscountPercentage > best.DiscountPercentage {
			best = offer
		}
	}
	return best, true
}
