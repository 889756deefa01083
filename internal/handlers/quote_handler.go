package handlers

import (
	"errors"
	"net/http"

	"github.com/biribar/biribar-backend/internal/models"
	"github.com/biribar/biribar-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// QuoteHandler handles the public quote wizard HTTP requests
type QuoteHandler struct {
	quoteService services.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler
func NewQuoteHandler(quoteService services.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
	}
}

// GetOptions handles GET /quote/options
func (h *QuoteHandler) GetOptions(c *gin.Context) {
	options, err := h.quoteService.Options(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load quote options: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, options)
}

// GetSequence handles POST /quote/steps. The client posts its current draft
// and receives the recomputed step list, the active step and the completion
// flags. Posting again after every answer keeps conditional steps in sync.
func (h *QuoteHandler) GetSequence(c *gin.Context) {
	var draft models.QuoteDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.quoteService.Sequence(&draft))
}

// GetEstimate handles POST /quote/estimate
func (h *QuoteHandler) GetEstimate(c *gin.Context) {
	var draft models.QuoteDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	breakdown, err := h.quoteService.Estimate(c.Request.Context(), &draft)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute estimate: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

// SubmitLead handles POST /quote/leads. An incomplete draft is a 422; a
// store failure is a 502 with retryable=true so the client keeps the draft
// and offers a retry instead of dropping the request on the floor.
func (h *QuoteHandler) SubmitLead(c *gin.Context) {
	var draft models.QuoteDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead, err := h.quoteService.Submit(c.Request.Context(), &draft)
	if err != nil {
		if errors.Is(err, services.ErrDraftIncomplete) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to save quote request", "retryable": true})
		return
	}

	c.JSON(http.StatusCreated, lead)
}
