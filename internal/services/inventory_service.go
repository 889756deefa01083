package services

import (
	"context"
	"errors"

	"github.com/biribar/biribar-backend/internal/models"
	"github.com/biribar/biribar-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidPackageSize is returned for inventory items whose package size
// would break the per-unit cost computation.
var ErrInvalidPackageSize = errors.New("package size must be greater than zero")

// InventoryService defines the interface for the cost table operations
type InventoryService interface {
	GetAllItems(ctx context.Context) ([]models.InventoryItem, error)
	CreateItem(ctx context.Context, item *models.InventoryItem) error
	UpdateItem(ctx context.Context, item *models.InventoryItem) error
	DeleteItem(ctx context.Context, id primitive.ObjectID) error
	EnsureSeed(ctx context.Context) error
}

type inventoryService struct {
	inventoryRepo repositories.InventoryRepository
}

// NewInventoryService creates a new InventoryService implementation
func NewInventoryService(inventoryRepo repositories.InventoryRepository) InventoryService {
	return &inventoryService{inventoryRepo: inventoryRepo}
}

// GetAllItems returns the whole cost table
func (s *inventoryService) GetAllItems(ctx context.Context) ([]models.InventoryItem, error) {
	return s.inventoryRepo.FindAll(ctx)
}

// CreateItem adds an ingredient to the cost table
func (s *inventoryService) CreateItem(ctx context.Context, item *models.InventoryItem) error {
	if item.PackageSize <= 0 {
		return ErrInvalidPackageSize
	}
	return s.inventoryRepo.Create(ctx, item)
}

// UpdateItem updates an ingredient
func (s *inventoryService) UpdateItem(ctx context.Context, item *models.InventoryItem) error {
	if item.PackageSize <= 0 {
		return ErrInvalidPackageSize
	}
	return s.inventoryRepo.Update(ctx, item)
}

// DeleteItem removes an ingredient. Recipes referencing it simply lose that
// line from their cost rollup.
func (s *inventoryService) DeleteItem(ctx context.Context, id primitive.ObjectID) error {
	return s.inventoryRepo.Delete(ctx, id)
}

// EnsureSeed inserts the starter cost table when the collection is empty
func (s *inventoryService) EnsureSeed(ctx context.Context) error {
	count, err := s.inventoryRepo.Count(ctx)
	if err != nil || count > 0 {
		return err
	}
	for _, item := range models.DefaultInventory() {
		item := item
		if err := s.inventoryRepo.Create(ctx, &item); err != nil {
			return err
		}
	}
	return nil
}
