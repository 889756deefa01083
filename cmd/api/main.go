package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/biribar/biribar-backend/api/routes"
	"github.com/biribar/biribar-backend/internal/config"
	"github.com/biribar/biribar-backend/internal/handlers"
	"github.com/biribar/biribar-backend/internal/repositories"
	mongorepo "github.com/biribar/biribar-backend/internal/repositories/mongodb"
	"github.com/biribar/biribar-backend/internal/services"
	"github.com/biribar/biribar-backend/pkg/mongodb"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present. Real deployments set environment variables
	// directly, so a missing file is not an error.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err = mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Repositories
	var leadRepo repositories.LeadRepository = mongorepo.NewLeadRepository(db)
	var pricingRepo repositories.PricingRepository = mongorepo.NewPricingRepository(db)
	var inventoryRepo repositories.InventoryRepository = mongorepo.NewInventoryRepository(db)
	var drinkRepo repositories.DrinkRepository = mongorepo.NewDrinkRepository(db)
	var contentRepo repositories.ContentRepository = mongorepo.NewContentRepository(db)
	var adminRepo repositories.AdminUserRepository = mongorepo.NewAdminUserRepository(db)

	// Services
	quoteService := services.NewQuoteService(pricingRepo, drinkRepo, contentRepo, leadRepo)
	leadService := services.NewLeadService(leadRepo)
	pricingService := services.NewPricingService(pricingRepo)
	inventoryService := services.NewInventoryService(inventoryRepo)
	drinkService := services.NewDrinkService(drinkRepo, inventoryRepo)
	contentService := services.NewContentService(contentRepo, pricingRepo, inventoryRepo, drinkRepo, leadRepo)
	authService := services.NewAuthService(adminRepo, cfg)

	// Seed the catalog and the first dashboard account on an empty database
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelSeed()
	if err := inventoryService.EnsureSeed(seedCtx); err != nil {
		log.Fatalf("Failed to seed inventory: %v", err)
	}
	if err := drinkService.EnsureSeed(seedCtx); err != nil {
		log.Fatalf("Failed to seed drinks: %v", err)
	}
	if err := authService.EnsureBootstrapAdmin(seedCtx); err != nil {
		log.Fatalf("Failed to bootstrap admin user: %v", err)
	}

	// Handlers
	h := routes.Handlers{
		Quote:     handlers.NewQuoteHandler(quoteService),
		Lead:      handlers.NewLeadHandler(leadService),
		Pricing:   handlers.NewPricingHandler(pricingService),
		Inventory: handlers.NewInventoryHandler(inventoryService),
		Drink:     handlers.NewDrinkHandler(drinkService),
		Content:   handlers.NewContentHandler(contentService),
		Auth:      handlers.NewAuthHandler(authService),
	}

	router := routes.SetupRouter(cfg, h)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
