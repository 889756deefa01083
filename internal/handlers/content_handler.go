package handlers

import (
	"net/http"

	"github.com/biribar/biribar-backend/internal/models"
	"github.com/biribar/biribar-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// ContentHandler handles site content and snapshot HTTP requests
type ContentHandler struct {
	contentService services.ContentService
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(contentService services.ContentService) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
	}
}

// GetSnapshot handles GET /snapshot
func (h *ContentHandler) GetSnapshot(c *gin.Context) {
	snapshot, err := h.contentService.GetSnapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get snapshot: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// UpdateGallery handles PUT /gallery
func (h *ContentHandler) UpdateGallery(c *gin.Context) {
	var req struct {
		Images []string `json:"images" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.contentService.UpdateGallery(c.Request.Context(), req.Images); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update gallery: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Gallery updated successfully"})
}

// UpdateTestimonials handles PUT /testimonials
func (h *ContentHandler) UpdateTestimonials(c *gin.Context) {
	var testimonials []models.Testimonial
	if err := c.ShouldBindJSON(&testimonials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.contentService.UpdateTestimonials(c.Request.Context(), testimonials); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update testimonials: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Testimonials updated successfully"})
}

// UpdateServices handles PUT /services
func (h *ContentHandler) UpdateServices(c *gin.Context) {
	var siteServices []models.SiteService
	if err := c.ShouldBindJSON(&siteServices); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.contentService.UpdateServices(c.Request.Context(), siteServices); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update services: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Services updated successfully"})
}

// UpdateAbout handles PUT /about
func (h *ContentHandler) UpdateAbout(c *gin.Context) {
	var about models.AboutContent
	if err := c.ShouldBindJSON(&about); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.contentService.UpdateAbout(c.Request.Context(), about); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update about: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "About content updated successfully"})
}

// UpdateQuoteFlavors handles PUT /quote-options. Omitted lists are left as
// they are.
func (h *ContentHandler) UpdateQuoteFlavors(c *gin.Context) {
	var req struct {
		CaipiFlavors  []string `json:"caipiFlavors"`
		FrozenFlavors []string `json:"frozenFlavors"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.contentService.UpdateQuoteFlavors(c.Request.Context(), req.CaipiFlavors, req.FrozenFlavors); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update quote options: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Quote options updated successfully"})
}
