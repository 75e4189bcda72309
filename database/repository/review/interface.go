package reviewRepo

import (
	"context"
	"errors"

	"mentesana/config"
	"mentesana/database"
	"mentesana/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no review matches the given ID.
var ErrNotFound = errors.New("review not found")

type ReviewRepository interface {
	Create(ctx context.Context, review models.Review) (*models.Review, error)
	GetVisible(ctx context.Context) ([]models.Review, error)
	GetAll(ctx context.Context) ([]models.Review, error)
	SetVisible(ctx context.Context, id string, visible bool) (*models.Review, error)
}

type mongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo returns a new ReviewRepository instance using MongoDB.
func NewMongoReviewRepo() ReviewRepository {
	db := database.MongoClient.Database(config.AppConfig.MongoDBName)
	return &mongoReviewRepo{
		coll: db.Collection("reviews"),
	}
}
