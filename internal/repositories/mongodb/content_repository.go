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

// Compile-time check to ensure ContentRepository implements the interface
var _ repositories.ContentRepository = (*ContentRepository)(nil)

// ContentRepository handles MongoDB operations for the site content
// singleton document
type ContentRepository struct {
	collection *mongo.Collection
}

// NewContentRepository creates a new ContentRepository
func NewContentRepository(db *mongo.Database) *ContentRepository {
	return &ContentRepository{
		collection: db.Collection("site_content"),
	}
}

// Get retrieves the site content. If no document exists yet the default
// content (empty site sections plus the stock flavor lists) is inserted and
// returned.
func (r *ContentRepository) Get(ctx context.Context) (*models.SiteContent, error) {
	var content models.SiteContent
	err := r.collection.FindOne(ctx, bson.M{}).Decode(&content)
	if err == mongo.ErrNoDocuments {
		defaults := models.DefaultSiteContent()
		defaults.UpdatedAt = time.Now()
		if _, err := r.collection.InsertOne(ctx, defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}
	if err != nil {
		return nil, err
	}
	return &content, nil
}

// Update replaces the site content document
func (r *ContentRepository) Update(ctx context.Context, content *models.SiteContent) error {
	content.UpdatedAt = time.Now()
	update := bson.M{
		"$set": bson.M{
			"gallery":       content.Gallery,
			"testimonials":  content.Testimonials,
			"services":      content.Services,
			"about":         content.About,
			"caipiFlavors":  content.CaipiFlavors,
			"frozenFlavors": content.FrozenFlavors,
			"updatedAt":     content.UpdatedAt,
		},
	}
	// Upsert so a write landing before the first read still creates the
	// singleton document.
	_, err := r.collection.UpdateOne(ctx, bson.M{}, update, options.Update().SetUpsert(true))
	return err
}
