package models

// DefaultInventory returns the starter cost table inserted when the
// inventory collection is empty.
func DefaultInventory() []InventoryItem {
	return []InventoryItem{
		{Slug: "v-absolut", Name: "Vodca Absolut", Category: "Destilado", Unit: UnitVolume, PackageSize: 1, Cost: 130},
		{Slug: "v-skyy", Name: "Vodka Skyy", Category: "Destilado", Unit: UnitVolume, PackageSize: 1, Cost: 70},
		{Slug: "v-roskoff", Name: "Vodca Roskoff", Category: "Destilado", Unit: UnitVolume, PackageSize: 1, Cost: 14.50},
		{Slug: "g-tanqueray", Name: "Gin Tanqueray", Category: "Destilado", Unit: UnitVolume, PackageSize: 0.75, Cost: 130},
		{Slug: "g-beefeater", Name: "Gin Beefeater", Category: "Destilado", Unit: UnitVolume, PackageSize: 0.75, Cost: 110},
		{Slug: "g-rocks", Name: "Gin Rock's", Category: "Destilado", Unit: UnitVolume, PackageSize: 1, Cost: 40},
		{Slug: "c-sagatiba", Name: "Cachaça Sagatiba", Category: "Destilado", Unit: UnitVolume, PackageSize: 0.75, Cost: 65},
		{Slug: "c-tatuzinho", Name: "Cachaça Tatuzinho", Category: "Destilado", Unit: UnitVolume, PackageSize: 0.6, Cost: 9},
		{Slug: "r-bacardi", Name: "Rum Bacardi Prata", Category: "Destilado", Unit: UnitVolume, PackageSize: 1, Cost: 70},
		{Slug: "f-limao", Name: "Limão", Category: "Insumo", Unit: UnitWeight, PackageSize: 1, Cost: 7},
		{Slug: "f-morango", Name: "Morango", Category: "Insumo", Unit: UnitWeight, PackageSize: 0.225, Cost: 22},
		{Slug: "f-abacaxi", Name: "Abacaxi", Category: "Insumo", Unit: UnitPiece, PackageSize: 1, Cost: 10},
		{Slug: "i-acucar", Name: "Açúcar", Category: "Insumo", Unit: UnitWeight, PackageSize: 1, Cost: 5},
	}
}

// DefaultDrinks returns the starter recipes inserted when the drinks
// collection is empty. Both are featured so the quote wizard has add-ons to
// offer out of the box.
func DefaultDrinks() []Drink {
	return []Drink{
		{
			Name:              "Moscow Mule",
			Category:          CategorySpecial,
			IsSpecial:         true,
			CanBeNonAlcoholic: true,
			Ingredients: []DrinkIngredient{
				{InventoryItemSlug: "v-skyy", Amount: 0.05},
				{InventoryItemSlug: "f-limao", Amount: 0.02},
				{InventoryItemSlug: "i-acucar", Amount: 0.015},
			},
		},
		{
			Name:              "Gin e Tônica",
			Category:          CategorySpecial,
			IsSpecial:         true,
			CanBeNonAlcoholic: false,
			Ingredients: []DrinkIngredient{
				{InventoryItemSlug: "g-rocks", Amount: 0.06},
				{InventoryItemSlug: "f-limao", Amount: 0.02},
			},
		},
	}
}
