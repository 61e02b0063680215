package photographerRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lenslink/database"
	"lenslink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPhotographerRepo implements PhotographerRepository using MongoDB.
type MongoPhotographerRepo struct {
	coll *mongo.Collection
}

// NewMongoPhotographerRepo creates a new instance of PhotographerRepository using MongoDB.
func NewMongoPhotographerRepo() PhotographerRepository {
	coll := database.Collection("photographers")
	repo := &MongoPhotographerRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoPhotographerRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "location", Value: 1}, {Key: "priceFrom", Value: 1}}},
		{Keys: bson.D{{Key: "specialties", Value: 1}, {Key: "priceFrom", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a profile by its unique ID. Returns nil when absent.
func (r *MongoPhotographerRepo) GetByID(id string) (*models.Photographer, error) {
	return r.findOne(bson.M{"id": id})
}

// GetByUserID retrieves the profile owned by the given user account.
func (r *MongoPhotographerRepo) GetByUserID(userID string) (*models.Photographer, error) {
	return r.findOne(bson.M{"userId": userID})
}

// GetByUsername retrieves a profile by its public handle.
func (r *MongoPhotographerRepo) GetByUsername(username string) (*models.Photographer, error) {
	return r.findOne(bson.M{"username": strings.ToLower(username)})
}

func (r *MongoPhotographerRepo) findOne(filter bson.M) (*models.Photographer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.Photographer
	if err := r.coll.FindOne(ctx, filter).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch photographer: %w", err)
	}
	return &p, nil
}

// Create inserts a new profile document.
func (r *MongoPhotographerRepo) Create(p *models.Photographer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		return fmt.Errorf("failed to create photographer: %w", err)
	}
	return nil
}

// UpdateFields applies a partial field update to a profile document.
func (r *MongoPhotographerRepo) UpdateFields(id string, fields map[string]any) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update photographer with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("photographer with id %s not found", id)
	}
	return nil
}

// Browse lists profiles matching the filter, paginated, with the total count.
func (r *MongoPhotographerRepo) Browse(filter BrowseFilter, opts BrowseOptions) ([]models.Photographer, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Location != "" {
		query["location"] = bson.M{"$regex": filter.Location, "$options": "i"}
	}
	if filter.Specialty != "" {
		query["specialties"] = bson.M{"$in": bson.A{filter.Specialty}}
	}
	if filter.MinPrice > 0 || filter.MaxPrice > 0 {
		price := bson.M{}
		if filter.MinPrice > 0 {
			price["$gte"] = filter.MinPrice
		}
		if filter.MaxPrice > 0 {
			price["$lte"] = filter.MaxPrice
		}
		query["priceFrom"] = price
	}
	if filter.Search != "" {
		query["$or"] = bson.A{
			bson.M{"username": bson.M{"$regex": filter.Search, "$options": "i"}},
			bson.M{"bio": bson.M{"$regex": filter.Search, "$options": "i"}},
			bson.M{"location": bson.M{"$regex": filter.Search, "$options": "i"}},
		}
	}

	sortDir := -1
	if opts.SortOrder == "asc" {
		sortDir = 1
	}
	sortBy := opts.SortBy
	if sortBy == "" {
		sortBy = "createdAt"
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: sortBy, Value: sortDir}}).
		SetSkip(int64((opts.Page - 1) * opts.Limit)).
		SetLimit(int64(opts.Limit))

	cursor, err := r.coll.Find(ctx, query, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to browse photographers: %w", err)
	}
	defer cursor.Close(ctx)

	var photographers []models.Photographer
	for cursor.Next(ctx) {
		var p models.Photographer
		if err := cursor.Decode(&p); err != nil {
			return nil, 0, fmt.Errorf("failed to decode photographer: %w", err)
		}
		photographers = append(photographers, p)
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count photographers: %w", err)
	}
	return photographers, total, nil
}
