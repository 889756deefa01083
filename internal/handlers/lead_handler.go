package handlers

import (
	"errors"
	"net/http"

	"github.com/biribar/biribar-backend/internal/models"
	"github.com/biribar/biribar-backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// LeadHandler handles lead-related HTTP requests for the dashboard
type LeadHandler struct {
	leadService services.LeadService
}

// NewLeadHandler creates a new LeadHandler
func NewLeadHandler(leadService services.LeadService) *LeadHandler {
	return &LeadHandler{
		leadService: leadService,
	}
}

// GetLeads handles GET /leads with an optional ?status= filter
func (h *LeadHandler) GetLeads(c *gin.Context) {
	status := c.Query("status")

	var (
		leads []models.Lead
		err   error
	)
	if status != "" {
		leads, err = h.leadService.GetLeadsByStatus(c.Request.Context(), models.LeadStatus(status))
	} else {
		leads, err = h.leadService.GetAllLeads(c.Request.Context())
	}
	if err != nil {
		if errors.Is(err, services.ErrInvalidLeadStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get leads: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, leads)
}

// GetLeadByID handles GET /leads/:id
func (h *LeadHandler) GetLeadByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	lead, err := h.leadService.GetLeadByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}

	c.JSON(http.StatusOK, lead)
}

// UpdateLeadStatus handles PATCH /leads/:id/status
func (h *LeadHandler) UpdateLeadStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var request struct {
		Status models.LeadStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err = h.leadService.UpdateLeadStatus(c.Request.Context(), id, request.Status)
	if err != nil {
		if errors.Is(err, services.ErrInvalidLeadStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update lead: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lead status updated successfully"})
}

// DeleteLead handles DELETE /leads/:id
func (h *LeadHandler) DeleteLead(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	err = h.leadService.DeleteLead(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete lead: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lead deleted successfully"})
}
