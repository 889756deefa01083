package routes

import (
	"github.com/biribar/biribar-backend/internal/config"
	"github.com/biribar/biribar-backend/internal/handlers"
	"github.com/biribar/biribar-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers bundles the HTTP handlers the router wires up
type Handlers struct {
	Quote     *handlers.QuoteHandler
	Lead      *handlers.LeadHandler
	Pricing   *handlers.PricingHandler
	Inventory *handlers.InventoryHandler
	Drink     *handlers.DrinkHandler
	Content   *handlers.ContentHandler
	Auth      *handlers.AuthHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	if !cfg.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
			})
		})

		auth := public.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
		}

		// Quote wizard routes
		quote := public.Group("/quote")
		{
			quote.GET("/options", h.Quote.GetOptions)
			quote.POST("/steps", h.Quote.GetSequence)
			quote.POST("/estimate", h.Quote.GetEstimate)
			quote.POST("/leads", h.Quote.SubmitLead)
		}

		public.GET("/snapshot", h.Content.GetSnapshot)
	}

	// Protected routes
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(cfg))
	{
		protected.GET("/auth/me", h.Auth.GetMe)

		// Lead routes
		leads := protected.Group("/leads")
		{
			leads.GET("", h.Lead.GetLeads)
			leads.GET("/:id", h.Lead.GetLeadByID)
			leads.PATCH("/:id/status", h.Lead.UpdateLeadStatus)
			leads.DELETE("/:id", h.Lead.DeleteLead)
		}

		// Pricing routes
		pricing := protected.Group("/pricing")
		{
			pricing.GET("", h.Pricing.GetPricing)
			pricing.PUT("", h.Pricing.UpdatePricing)
		}

		// Inventory routes
		inventory := protected.Group("/inventory")
		{
			inventory.GET("", h.Inventory.GetItems)
			inventory.POST("", h.Inventory.CreateItem)
			inventory.PUT("/:id", h.Inventory.UpdateItem)
			inventory.DELETE("/:id", h.Inventory.DeleteItem)
		}

		// Drink routes
		drinks := protected.Group("/drinks")
		{
			drinks.GET("", h.Drink.GetDrinks)
			drinks.PUT("", h.Drink.ReplaceDrinks)
			drinks.DELETE("/:id", h.Drink.DeleteDrink)
		}

		// Site content routes
		protected.PUT("/gallery", h.Content.UpdateGallery)
		protected.PUT("/testimonials", h.Content.UpdateTestimonials)
		protected.PUT("/services", h.Content.UpdateServices)
		protected.PUT("/about", h.Content.UpdateAbout)
		protected.PUT("/quote-options", h.Content.UpdateQuoteFlavors)
	}

	return router
}
