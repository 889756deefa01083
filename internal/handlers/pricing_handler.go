package handlers

import (
	"net/http"

	"github.com/biribar/biribar-backend/internal/models"
	"github.com/biribar/biribar-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// PricingHandler handles pricing config HTTP requests
type PricingHandler struct {
	pricingService services.PricingService
}

// NewPricingHandler creates a new PricingHandler
func NewPricingHandler(pricingService services.PricingService) *PricingHandler {
	return &PricingHandler{
		pricingService: pricingService,
	}
}

// GetPricing handles GET /pricing
func (h *PricingHandler) GetPricing(c *gin.Context) {
	cfg, err := h.pricingService.GetPricing(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get pricing: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// UpdatePricing handles PUT /pricing
func (h *PricingHandler) UpdatePricing(c *gin.Context) {
	var cfg models.PricingConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.pricingService.UpdatePricing(c.Request.Context(), &cfg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update pricing: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, cfg)
}
