package services

import (
	"context"
	"math"
	"testing"

	"github.com/biribar/biribar-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// costEqual compares rolled-up costs with a tolerance. The rollup accumulates
// amount x unit cost term by term in float64, so the result can differ from a
// constant-folded expected value in the last bits.
func costEqual(got, want float64) bool {
	return math.Abs(got-want) < 1e-9
}

type fakeInventoryRepo struct {
	items []models.InventoryItem
}

func (f *fakeInventoryRepo) Create(ctx context.Context, item *models.InventoryItem) error {
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeInventoryRepo) FindAll(ctx context.Context) ([]models.InventoryItem, error) {
	return f.items, nil
}

func (f *fakeInventoryRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.InventoryItem, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			item := f.items[i]
			return &item, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeInventoryRepo) Update(ctx context.Context, item *models.InventoryItem) error {
	for i := range f.items {
		if f.items[i].ID == item.ID {
			f.items[i] = *item
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeInventoryRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeInventoryRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.items)), nil
}

func TestCostPerServing(t *testing.T) {
	bySlug := map[string]models.InventoryItem{
		"v-skyy":   {Slug: "v-skyy", Unit: models.UnitVolume, PackageSize: 1, Cost: 70},
		"f-limao":  {Slug: "f-limao", Unit: models.UnitWeight, PackageSize: 1, Cost: 7},
		"i-acucar": {Slug: "i-acucar", Unit: models.UnitWeight, PackageSize: 1, Cost: 5},
	}
	drink := models.Drink{
		Name: "Moscow Mule",
		Ingredients: []models.DrinkIngredient{
			{InventoryItemSlug: "v-skyy", Amount: 0.05},
			{InventoryItemSlug: "f-limao", Amount: 0.02},
			{InventoryItemSlug: "i-acucar", Amount: 0.015},
		},
	}

	// 0.05*70 + 0.02*7 + 0.015*5
	got := CostPerServing(drink, bySlug)
	want := 0.05*70 + 0.02*7 + 0.015*5
	if !costEqual(got, want) {
		t.Errorf("CostPerServing = %v, want %v", got, want)
	}
}

func TestCostPerServingSkipsUnknownIngredients(t *testing.T) {
	bySlug := map[string]models.InventoryItem{
		"f-limao": {Slug: "f-limao", PackageSize: 1, Cost: 7},
	}
	drink := models.Drink{
		Ingredients: []models.DrinkIngredient{
			{InventoryItemSlug: "deleted-item", Amount: 0.05},
			{InventoryItemSlug: "f-limao", Amount: 0.02},
		},
	}

	got := CostPerServing(drink, bySlug)
	want := 0.02 * 7
	if !costEqual(got, want) {
		t.Errorf("CostPerServing = %v, want %v", got, want)
	}
}

func TestCostPerServingPackageFractions(t *testing.T) {
	// A 225g strawberry package costing 22: unit cost is per kg.
	bySlug := map[string]models.InventoryItem{
		"f-morango": {Slug: "f-morango", Unit: models.UnitWeight, PackageSize: 0.225, Cost: 22},
	}
	drink := models.Drink{
		Ingredients: []models.DrinkIngredient{
			{InventoryItemSlug: "f-morango", Amount: 0.09},
		},
	}

	got := CostPerServing(drink, bySlug)
	want := 0.09 * (22 / 0.225)
	if !costEqual(got, want) {
		t.Errorf("CostPerServing = %v, want %v", got, want)
	}
}

func TestCostPerServingZeroPackageSize(t *testing.T) {
	bySlug := map[string]models.InventoryItem{
		"broken": {Slug: "broken", PackageSize: 0, Cost: 10},
	}
	drink := models.Drink{
		Ingredients: []models.DrinkIngredient{
			{InventoryItemSlug: "broken", Amount: 1},
		},
	}

	if got := CostPerServing(drink, bySlug); got != 0 {
		t.Errorf("CostPerServing = %v, want 0", got)
	}
}

func TestGetDrinksRollsUpCosts(t *testing.T) {
	drinkRepo := &fakeDrinkRepo{}
	if err := drinkRepo.ReplaceAll(context.Background(), models.DefaultDrinks()); err != nil {
		t.Fatalf("ReplaceAll returned error: %v", err)
	}
	inventoryRepo := &fakeInventoryRepo{items: models.DefaultInventory()}
	svc := NewDrinkService(drinkRepo, inventoryRepo)

	drinks, err := svc.GetDrinks(context.Background())
	if err != nil {
		t.Fatalf("GetDrinks returned error: %v", err)
	}
	if len(drinks) != 2 {
		t.Fatalf("drink count = %d, want 2", len(drinks))
	}

	for _, d := range drinks {
		if d.CostPerServing <= 0 {
			t.Errorf("%s cost per serving = %v, want > 0", d.Name, d.CostPerServing)
		}
	}
}

func TestDrinkEnsureSeed(t *testing.T) {
	drinkRepo := &fakeDrinkRepo{}
	svc := NewDrinkService(drinkRepo, &fakeInventoryRepo{})

	if err := svc.EnsureSeed(context.Background()); err != nil {
		t.Fatalf("EnsureSeed returned error: %v", err)
	}
	if len(drinkRepo.drinks) == 0 {
		t.Fatalf("seed inserted no drinks")
	}
	seeded := len(drinkRepo.drinks)

	// A second run on a populated store must not reseed.
	if err := svc.EnsureSeed(context.Background()); err != nil {
		t.Fatalf("EnsureSeed returned error: %v", err)
	}
	if len(drinkRepo.drinks) != seeded {
		t.Errorf("drink count after reseed = %d, want %d", len(drinkRepo.drinks), seeded)
	}
}
