package handlers

import (
	"net/http"

	"github.com/biribar/biribar-backend/internal/models"
	"github.com/biribar/biribar-backend/internal/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DrinkHandler handles recipe/menu HTTP requests
type DrinkHandler struct {
	drinkService services.DrinkService
}

// NewDrinkHandler creates a new DrinkHandler
func NewDrinkHandler(drinkService services.DrinkService) *DrinkHandler {
	return &DrinkHandler{
		drinkService: drinkService,
	}
}

// GetDrinks handles GET /drinks. Each recipe carries its cost per serving
// rolled up from the current cost table.
func (h *DrinkHandler) GetDrinks(c *gin.Context) {
	drinks, err := h.drinkService.GetDrinks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get drinks: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, drinks)
}

// ReplaceDrinks handles PUT /drinks, swapping the whole menu
func (h *DrinkHandler) ReplaceDrinks(c *gin.Context) {
	var drinks []models.Drink
	if err := c.ShouldBindJSON(&drinks); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.drinkService.ReplaceDrinks(c.Request.Context(), drinks); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update drinks: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Drinks updated successfully"})
}

// DeleteDrink handles DELETE /drinks/:id
func (h *DrinkHandler) DeleteDrink(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := h.drinkService.DeleteDrink(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete drink: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Drink deleted successfully"})
}
