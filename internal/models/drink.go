package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DrinkCategory is one of the three fixed recipe tags
type DrinkCategory string

const (
	CategorySpecial DrinkCategory = "Drink Especial"
	CategoryCaipi   DrinkCategory = "Caipi Frutas"
	CategoryFrozen  DrinkCategory = "Frozen"
)

// DrinkIngredient references an inventory item by slug and the amount used
// per serving, in the item's unit.
type DrinkIngredient struct {
	InventoryItemSlug string  `bson:"inventoryItemSlug" json:"inventoryItemId"`
	Amount            float64 `bson:"amount" json:"amount"`
}

// Drink is a named recipe. Recipes flagged IsSpecial are offered as optional
// add-ons in the quote wizard and featured on the public site.
type Drink struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name              string             `bson:"name" json:"name"`
	Category          DrinkCategory      `bson:"category" json:"category"`
	Ingredients       []DrinkIngredient  `bson:"ingredients" json:"ingredients"`
	IsSpecial         bool               `bson:"isSpecial" json:"isSpecial"`
	CanBeNonAlcoholic bool               `bson:"canBeNonAlcoholic" json:"canBeNonAlcoholic"`
	Image             string             `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// DrinkWithCost is a drink plus its computed ingredient cost per serving,
// returned by the dashboard menu screen.
type DrinkWithCost struct {
	Drink          `bson:",inline"`
	CostPerServing float64 `json:"costPerServing"`
}
