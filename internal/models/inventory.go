package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InventoryUnit is the unit of measure a package is sold in
type InventoryUnit string

const (
	UnitPiece  InventoryUnit = "un"
	UnitWeight InventoryUnit = "kg"
	UnitVolume InventoryUnit = "l"
)

// InventoryItem represents a purchasable ingredient. PackageSize is expressed
// in the item's unit and Cost is the price of one package.
type InventoryItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Slug        string             `bson:"slug" json:"slug"`
	Name        string             `bson:"name" json:"name"`
	Category    string             `bson:"category" json:"category"`
	Unit        InventoryUnit      `bson:"unit" json:"unit"`
	PackageSize float64            `bson:"packageSize" json:"packageSize"`
	Cost        float64            `bson:"cost" json:"cost"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// UnitCost returns the cost of one unit (1 l, 1 kg or 1 piece) of the item.
// Items with a zero package size have no meaningful unit cost.
func (i *InventoryItem) UnitCost() float64 {
	if i.PackageSize <= 0 {
		return 0
	}
	return i.Cost / i.PackageSize
}
