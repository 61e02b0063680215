package bookingRepo

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

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	coll := database.Collection("bookings")
	repo := &MongoBookingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "photographerId", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "photographerId", Value: 1}, {Key: "eventDate", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) findOne(filter bson.M) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var b models.Booking
	if err := r.coll.FindOne(ctx, filter).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	return &b, nil
}

// GetForParticipant retrieves a booking visible to the given customer or
// photographer profile.
func (r *MongoBookingRepo) GetForParticipant(id, userID, photographerID string) (*models.Booking, error) {
	or := bson.A{bson.M{"userId": userID}}
	if photographerID != "" {
		or = append(or, bson.M{"photographerId": photographerID})
	}
	return r.findOne(bson.M{"id": id, "$or": or})
}

// GetForPhotographer retrieves a booking targeting the given profile.
func (r *MongoBookingRepo) GetForPhotographer(id, photographerID string) (*models.Booking, error) {
	return r.findOne(bson.M{"id": id, "photographerId": photographerID})
}

// FindActive retrieves a pending or accepted booking for the triple.
func (r *MongoBookingRepo) FindActive(userID, photographerID string, eventDate time.Time) (*models.Booking, error) {
	return r.findOne(bson.M{
		"userId":         userID,
		"photographerId": photographerID,
		"eventDate":      eventDate,
		"status":         bson.M{"$in": bson.A{models.BookingStatusPending, models.BookingStatusAccepted}},
	})
}

// FindCompleted retrieves any completed booking between the pair.
func (r *MongoBookingRepo) FindCompleted(userID, photographerID string) (*models.Booking, error) {
	return r.findOne(bson.M{
		"userId":         userID,
		"photographerId": photographerID,
		"status":         models.BookingStatusCompleted,
	})
}

// ListByUser lists a customer's bookings, newest first.
func (r *MongoBookingRepo) ListByUser(userID string) ([]models.Booking, error) {
	return r.findMany(bson.M{"userId": userID})
}

// ListByPhotographer lists bookings targeting a profile, newest first.
func (r *MongoBookingRepo) ListByPhotographer(photographerID string) ([]models.Booking, error) {
	return r.findMany(bson.M{"photographerId": photographerID})
}

func (r *MongoBookingRepo) findMany(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(b *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, b)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// UpdateStatus persists a status change through a conditional update: the
// filter requires the previous status to still hold, so two racing
// transitions cannot both win.
func (r *MongoBookingRepo) UpdateStatus(id, photographerID, from, to string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "photographerId": photographerID, "status": from}
	update := bson.M{"$set": bson.M{"status": to, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		// Distinguish a lost race from a booking that never matched.
		existing, ferr := r.GetForPhotographer(id, photographerID)
		if ferr != nil {
			return nil, ferr
		}
		if existing != nil {
			return nil, ErrStatusPrecondition
		}
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	return &updated, nil
}

// UpdatePendingContent updates eventDate/message on a pending booking owned
// by the given customer. The status and ownership live in the filter, so a
// wrong-state or wrong-owner request looks identical to a missing booking.
func (r *MongoBookingRepo) UpdatePendingContent(id, userID string, fields map[string]any) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	filter := bson.M{"id": id, "userId": userID, "status": models.BookingStatusPending}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": fields}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return &updated, nil
}

// DeletePending removes a pending booking owned by the given customer.
func (r *MongoBookingRepo) DeletePending(id, userID string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "userId": userID, "status": models.BookingStatusPending}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to delete booking with id %s: %w", id, err)
	}
	return result.DeletedCount > 0, nil
}
