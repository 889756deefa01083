package repositories

import (
	"context"

	"github.com/biribar/biribar-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LeadRepository defines the interface for lead data operations
type LeadRepository interface {
	Create(ctx context.Context, lead *models.Lead) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Lead, error)
	FindAll(ctx context.Context) ([]models.Lead, error)
	FindByStatus(ctx context.Context, status models.LeadStatus) ([]models.Lead, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.LeadStatus) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

// PricingRepository defines the interface for the pricing config singleton
type PricingRepository interface {
	Get(ctx context.Context) (*models.PricingConfig, error)
	Update(ctx context.Context, cfg *models.PricingConfig) error
}

// InventoryRepository defines the interface for inventory data operations
type InventoryRepository interface {
	Create(ctx context.Context, item *models.InventoryItem) error
	FindAll(ctx context.Context) ([]models.InventoryItem, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.InventoryItem, error)
	Update(ctx context.Context, item *models.InventoryItem) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

// DrinkRepository defines the interface for drink recipe operations.
// ReplaceAll mirrors the dashboard's coarse write contract: the menu screen
// reads the whole collection, mutates it locally and writes it back.
type DrinkRepository interface {
	FindAll(ctx context.Context) ([]models.Drink, error)
	FindSpecials(ctx context.Context) ([]models.Drink, error)
	ReplaceAll(ctx context.Context, drinks []models.Drink) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

// ContentRepository defines the interface for the site content singleton
type ContentRepository interface {
	Get(ctx context.Context) (*models.SiteContent, error)
	Update(ctx context.Context, content *models.SiteContent) error
}

// AdminUserRepository defines the interface for dashboard account operations
type AdminUserRepository interface {
	Create(ctx context.Context, user *models.AdminUser) error
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.AdminUser, error)
	Count(ctx context.Context) (int64, error)
}
