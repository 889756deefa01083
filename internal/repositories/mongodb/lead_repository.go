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

// Compile-time check to ensure LeadRepository implements the interface
var _ repositories.LeadRepository = (*LeadRepository)(nil)

// LeadRepository handles MongoDB operations for Lead
type LeadRepository struct {
	collection *mongo.Collection
}

// NewLeadRepository creates a new LeadRepository
func NewLeadRepository(db *mongo.Database) *LeadRepository {
	return &LeadRepository{
		collection: db.Collection("leads"),
	}
}

// Create inserts a new lead
func (r *LeadRepository) Create(ctx context.Context, lead *models.Lead) error {
	lead.ID = primitive.NewObjectID()
	lead.CreatedAt = time.Now()
	lead.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, lead)
	return err
}

// FindByID finds a lead by ID
func (r *LeadRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Lead, error) {
	var lead models.Lead
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&lead)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &lead, nil
}

// FindAll retrieves all leads, newest first
func (r *LeadRepository) FindAll(ctx context.Context) ([]models.Lead, error) {
	return r.find(ctx, bson.M{})
}

// FindByStatus retrieves all leads with the given status, newest first
func (r *LeadRepository) FindByStatus(ctx context.Context, status models.LeadStatus) ([]models.Lead, error) {
	return r.find(ctx, bson.M{"status": status})
}

func (r *LeadRepository) find(ctx context.Context, filter bson.M) ([]models.Lead, error) {
	var leads []models.Lead
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &leads); err != nil {
		return nil, err
	}
	if leads == nil {
		leads = []models.Lead{}
	}
	return leads, nil
}

// UpdateStatus changes the review status of a lead
func (r *LeadRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.LeadStatus) error {
	update := bson.M{
		"$set": bson.M{
			"status":    status,
			"updatedAt": time.Now(),
		},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete deletes a lead by ID
func (r *LeadRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// Count returns the number of leads
func (r *LeadRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
