package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PricingConfig holds the base rates and flat fees the quote estimate is
// derived from. It is a singleton document, edited only from the dashboard
// settings screen and read-only everywhere else.
type PricingConfig struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	BaseAlcohol         float64            `bson:"baseAlcohol" json:"baseAlcohol"`
	BaseNonAlcohol      float64            `bson:"baseNonAlcohol" json:"baseNonAlcohol"`
	BaseMisto           float64            `bson:"baseMisto" json:"baseMisto"`
	ExtraHourMultiplier float64            `bson:"extraHourMultiplier" json:"extraHourMultiplier"`
	SpecialDrinkFee     float64            `bson:"specialDrinkFee" json:"specialDrinkFee"`
	PremiumLabelFee     float64            `bson:"premiumLabelFee" json:"premiumLabelFee"`
	CounterFixedFee     float64            `bson:"counterFixedFee" json:"counterFixedFee"`
	GlasswareFixedFee   float64            `bson:"glasswareFixedFee" json:"glasswareFixedFee"`
	StaffHourlyRate     float64            `bson:"staffHourlyRate" json:"staffHourlyRate"`
	UpdatedAt           time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// DefaultPricingConfig returns the pricing used whenever the store has no
// pricing document yet.
func DefaultPricingConfig() *PricingConfig {
	return &PricingConfig{
		BaseAlcohol:         65,
		BaseNonAlcohol:      45,
		BaseMisto:           55,
		ExtraHourMultiplier: 0.15,
		SpecialDrinkFee:     5,
		PremiumLabelFee:     18,
		CounterFixedFee:     100,
		GlasswareFixedFee:   2.50,
		StaffHourlyRate:     35,
	}
}
