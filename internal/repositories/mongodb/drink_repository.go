package mongodb

import (
	"context"
	"time"

	"github.com/biribar/biribar-backend/internal/models"
	"github.com/biribar/biribar-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure DrinkRepository implements the interface
var _ repositories.DrinkRepository = (*DrinkRepository)(nil)

// DrinkRepository handles MongoDB operations for Drink
type DrinkRepository struct {
	collection *mongo.Collection
}

// NewDrinkRepository creates a new DrinkRepository
func NewDrinkRepository(db *mongo.Database) *DrinkRepository {
	return &DrinkRepository{
		collection: db.Collection("drinks"),
	}
}

// FindAll retrieves all drink recipes
func (r *DrinkRepository) FindAll(ctx context.Context) ([]models.Drink, error) {
	return r.find(ctx, bson.M{})
}

// FindSpecials retrieves the recipes flagged as featured, the subset the
// quote wizard offers as add-ons
func (r *DrinkRepository) FindSpecials(ctx context.Context) ([]models.Drink, error) {
	return r.find(ctx, bson.M{"isSpecial": true})
}

func (r *DrinkRepository) find(ctx context.Context, filter bson.M) ([]models.Drink, error) {
	var drinks []models.Drink
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &drinks); err != nil {
		return nil, err
	}
	if drinks == nil {
		drinks = []models.Drink{}
	}
	return drinks, nil
}

// ReplaceAll swaps the whole drinks collection for the given list. The menu
// screen edits the full list client-side and saves it wholesale.
func (r *DrinkRepository) ReplaceAll(ctx context.Context, drinks []models.Drink) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(drinks) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(drinks))
	now := time.Now()
	for i := range drinks {
		if drinks[i].ID.IsZero() {
			drinks[i].ID = primitive.NewObjectID()
			drinks[i].CreatedAt = now
		}
		drinks[i].UpdatedAt = now
		docs = append(docs, drinks[i])
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// Delete deletes a drink by ID
func (r *DrinkRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// Count returns the number of drinks
func (r *DrinkRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
