// Package dto provides data transfer objects for offer HTTP responses.
package dto

import (
	"encoding/json"
	"time"

	offersDomain "github.com/allisson/orders/internal/offers/domain"
)

// OfferResponse represents an offer in API responses.
type OfferResponse struct {
	OfferID            string      `json:"offerId"`
	Title              string      `json:"title"`
	Description        string      `json:"description"`
	DiscountPercentage int         `json:"discountPercentage"`
	MinOrderAmount     json.Number `json:"minOrderAmount"`
	MaxDiscount        json.Number `json:"maxDiscount"`
	ValidUntil         time.Time   `json:"validUntil"`
	Category           string      `json:"category"`
	Active             bool        `json:"active"`
}

// MapOfferToResponse converts a domain offer to an API response.
func MapOfferToResponse(offer offersDomain.Offer) OfferResponse {
	return OfferResponse{
		OfferID:            offer.OfferID,
		Title:              offer.Title,
		Description:        offer.Description,
		DiscountPercentage: offer.DiscountPercentage,
		MinOrderAmount:     json.Number(offer.MinOrderAmount.StringFixed(2)),
		MaxDiscount:        json.Number(offer.MaxDiscount.StringFixed(2)),
		ValidUntil:         offer.ValidUntil,
		Category:           offer.Category,
		Active:             offer.Active,
	}
}

// MapOffersToResponse converts domain offers to API responses, never returning nil.
func MapOffersToResponse(offers []offersDomain.Offer) []OfferResponse {
	responses := make([]OfferResponse, 0, len(offers))
	for _, offer := range offers {
		responses = append(responses, MapOfferToResponse(offer))
	}
	return responses
}
