package reviewRepo

import (
	"context"
	"errors"
	"time"

	"mentesana/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new review and returns the persisted record. Reviews are
// always written with whatever visibility the caller set; the moderation
// service submits them hidden.
func (r *mongoReviewRepo) Create(ctx context.Context, review models.Review) (*models.Review, error) {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	review.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		return nil, err
	}
	return &review, nil
}

// GetVisible returns approved reviews only, most recent first.
func (r *mongoReviewRepo) GetVisible(ctx context.Context) ([]models.Review, error) {
	return r.find(ctx, bson.M{"isVisible": true})
}

// GetAll returns every review, pending ones included, most recent first.
func (r *mongoReviewRepo) GetAll(ctx context.Context) ([]models.Review, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoReviewRepo) find(ctx context.Context, filter bson.M) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// SetVisible updates a review's visibility flag and returns the updated record.
func (r *mongoReviewRepo) SetVisible(ctx context.Context, id string, visible bool) (*models.Review, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"isVisible": visible}}

	var review models.Review
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&review)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}
