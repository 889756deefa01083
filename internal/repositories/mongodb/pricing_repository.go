package mongodb

import (
	"context"
	"time"

	"github.com/biribar/biribar-backend/internal/models"
	"github.com/biribar/biribar-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure PricingRepository implements the interface
var _ repositories.PricingRepository = (*PricingRepository)(nil)

// PricingRepository handles MongoDB operations for the pricing config
// singleton document
type PricingRepository struct {
	collection *mongo.Collection
}

// NewPricingRepository creates a new PricingRepository
func NewPricingRepository(db *mongo.Database) *PricingRepository {
	return &PricingRepository{
		collection: db.Collection("pricing"),
	}
}

// Get retrieves the pricing config. If no document exists yet the default
// config is inserted and returned, so readers never see a missing config.
func (r *PricingRepository) Get(ctx context.Context) (*models.PricingConfig, error) {
	var cfg models.PricingConfig
	err := r.collection.FindOne(ctx, bson.M{}).Decode(&cfg)
	if err == mongo.ErrNoDocuments {
		defaults := models.DefaultPricingConfig()
		defaults.UpdatedAt = time.Now()
		if _, err := r.collection.InsertOne(ctx, defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Update replaces the pricing config document
func (r *PricingRepository) Update(ctx context.Context, cfg *models.PricingConfig) error {
	cfg.UpdatedAt = time.Now()
	update := bson.M{
		"$set": bson.M{
			"baseAlcohol":         cfg.BaseAlcohol,
			"baseNonAlcohol":      cfg.BaseNonAlcohol,
			"baseMisto":           cfg.BaseMisto,
			"extraHourMultiplier": cfg.ExtraHourMultiplier,
			"specialDrinkFee":     cfg.SpecialDrinkFee,
			"premiumLabelFee":     cfg.PremiumLabelFee,
			"counterFixedFee":     cfg.CounterFixedFee,
			"glasswareFixedFee":   cfg.GlasswareFixedFee,
			"staffHourlyRate":     cfg.StaffHourlyRate,
			"updatedAt":           cfg.UpdatedAt,
		},
	}
	// Upsert so a write landing before the first read still creates the
	// singleton document.
	_, err := r.collection.UpdateOne(ctx, bson.M{}, update, options.Update().SetUpsert(true))
	return err
}
