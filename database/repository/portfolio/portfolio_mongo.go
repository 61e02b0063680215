package portfolioRepo

import (
	"context"
	"fmt"
	"time"

	"lenslink/database"
	"lenslink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPortfolioRepo implements PortfolioRepository using MongoDB.
type MongoPortfolioRepo struct {
	coll *mongo.Collection
}

// NewMongoPortfolioRepo creates a new instance of PortfolioRepository using MongoDB.
func NewMongoPortfolioRepo() PortfolioRepository {
	coll := database.Collection("portfolio")
	repo := &MongoPortfolioRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPortfolioRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "photographerId", Value: 1}, {Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "photographerId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a single portfolio item.
func (r *MongoPortfolioRepo) Create(item *models.PortfolioItem) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return fmt.Errorf("failed to create portfolio item: %w", err)
	}
	return nil
}

// CreateMany inserts a batch of portfolio items.
func (r *MongoPortfolioRepo) CreateMany(items []models.PortfolioItem) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	now := time.Now()
	docs := make([]any, 0, len(items))
	for i := range items {
		items[i].CreatedAt = now
		items[i].UpdatedAt = now
		docs = append(docs, items[i])
	}

	_, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("failed to create portfolio items: %w", err)
	}
	return nil
}

// ListByPhotographer lists a profile's items, newest first.
func (r *MongoPortfolioRepo) ListByPhotographer(photographerID string) ([]models.PortfolioItem, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"photographerId": photographerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolio items: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.PortfolioItem
	for cursor.Next(ctx) {
		var item models.PortfolioItem
		if err := cursor.Decode(&item); err != nil {
			return nil, fmt.Errorf("failed to decode portfolio item: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

// UpdateCategory changes the category of an owned item.
func (r *MongoPortfolioRepo) UpdateCategory(id, photographerID, category string) (*models.PortfolioItem, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "photographerId": photographerID}
	update := bson.M{"$set": bson.M{"category": category, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.PortfolioItem
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update portfolio item: %w", err)
	}
	return &updated, nil
}

// Delete removes an owned item.
func (r *MongoPortfolioRepo) Delete(id, photographerID string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "photographerId": photographerID})
	if err != nil {
		return false, fmt.Errorf("failed to delete portfolio item: %w", err)
	}
	return result.DeletedCount > 0, nil
}

// DeleteMany removes a set of owned items and returns the deleted count.
func (r *MongoPortfolioRepo) DeleteMany(ids []string, photographerID string) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"id": bson.M{"$in": ids}, "photographerId": photographerID}
	result, err := r.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete portfolio items: %w", err)
	}
	return result.DeletedCount, nil
}
