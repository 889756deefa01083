package services

import (
	"context"

	"github.com/biribar/biribar-backend/internal/models"
	"github.com/biribar/biribar-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DrinkService defines the interface for recipe/menu operations
type DrinkService interface {
	GetDrinks(ctx context.Context) ([]models.DrinkWithCost, error)
	ReplaceDrinks(ctx context.Context, drinks []models.Drink) error
	DeleteDrink(ctx context.Context, id primitive.ObjectID) error
	EnsureSeed(ctx context.Context) error
}

type drinkService struct {
	drinkRepo     repositories.DrinkRepository
	inventoryRepo repositories.InventoryRepository
}

// NewDrinkService creates a new DrinkService implementation
func NewDrinkService(drinkRepo repositories.DrinkRepository, inventoryRepo repositories.InventoryRepository) DrinkService {
	return &drinkService{
		drinkRepo:     drinkRepo,
		inventoryRepo: inventoryRepo,
	}
}

// GetDrinks returns every recipe with its ingredient cost per serving rolled
// up from the current cost table.
func (s *drinkService) GetDrinks(ctx context.Context) ([]models.DrinkWithCost, error) {
	drinks, err := s.drinkRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.inventoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	bySlug := make(map[string]models.InventoryItem, len(items))
	for _, item := range items {
		bySlug[item.Slug] = item
	}

	result := make([]models.DrinkWithCost, 0, len(drinks))
	for _, d := range drinks {
		result = append(result, models.DrinkWithCost{
			Drink:          d,
			CostPerServing: CostPerServing(d, bySlug),
		})
	}
	return result, nil
}

// CostPerServing sums amount x unit cost over a recipe's ingredients.
// References to ingredients no longer in the cost table are skipped.
func CostPerServing(d models.Drink, itemsBySlug map[string]models.InventoryItem) float64 {
	var total float64
	for _, ing := range d.Ingredients {
		item, ok := itemsBySlug[ing.InventoryItemSlug]
		if !ok {
			continue
		}
		total += ing.Amount * item.UnitCost()
	}
	return total
}

// ReplaceDrinks swaps the whole menu for the given list
func (s *drinkService) ReplaceDrinks(ctx context.Context, drinks []models.Drink) error {
	return s.drinkRepo.ReplaceAll(ctx, drinks)
}

// DeleteDrink removes a single recipe
func (s *drinkService) DeleteDrink(ctx context.Context, id primitive.ObjectID) error {
	return s.drinkRepo.Delete(ctx, id)
}

// EnsureSeed inserts the starter menu when the collection is empty
func (s *drinkService) EnsureSeed(ctx context.Context) error {
	count, err := s.drinkRepo.Count(ctx)
	if err != nil || count > 0 {
		return err
	}
	return s.drinkRepo.ReplaceAll(ctx, models.DefaultDrinks())
}
