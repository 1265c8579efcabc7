// Package http provides HTTP handlers for promotional offers.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/allisson/orders/internal/httputil"
	offersDomain "github.com/allisson/orders/internal/offers/domain"
	"github.com/allisson/orders/internal/offers/http/dto"
	offersUseCase "github.com/allisson/orders/internal/offers/usecase"
)

// OfferHandler handles HTTP requests for offers.
type OfferHandler struct {
	offerUseCase offersUseCase.OfferUseCase
	logger       *slog.Logger
}

// NewOfferHandler creates a new offer handler.
func NewOfferHandler(offerUseCase offersUseCase.OfferUseCase, logger *slog.Logger) *OfferHandler {
	return &OfferHandler{
		offerUseCase: offerUseCase,
		logger:       logger,
	}
}

// LatestHandler lists the active offers.
// GET /api/v1/offers/latest
func (h *OfferHandler) LatestHandler(c *gin.Context) {
	offers, err := h.offerUseCase.ListActive(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapOffersToResponse(offers))
}

// ApplicableHandler lists the offers that apply to an order.
// GET /api/v1/offers/applicable?orderAmount=&category=
func (h *OfferHandler) ApplicableHandler(c *gin.Context) {
	amount, category, ok := h.parseOrderQuery(c)
	if !ok {
		return
	}

	offers, err := h.offerUseCase.Applicable(c.Request.Context(), amount, category)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapOffersToResponse(offers))
}

// BestHandler returns the applicable offer with the highest discount.
// GET /api/v1/offers/best?orderAmount=&category=
// Returns 204 No Content when no offer applies.
func (h *OfferHandler) BestHandler(c *gin.Context) {
	amount, category, ok := h.parseOrderQuery(c)
	if !ok {
		return
	}

	offer, found, err := h.offerUseCase.Best(c.Request.Context(), amount, category)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	if !found {
		c.Status(http.StatusNoContent)
		c.Writer.WriteHeaderNow()
		return
	}

	c.JSON(http.StatusOK, dto.MapOfferToResponse(*offer))
}

func (h *OfferHandler) parseOrderQuery(c *gin.Context) (decimal.Decimal, string, bool) {
	amount, err := httputil.ParseDecimalQuery(c, "orderAmount")
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return decimal.Zero, "", false
	}

	return amount, httputil.QueryOrDefault(c, "category", offersDomain.CategoryAll), true
}
