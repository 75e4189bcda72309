package appointmentRepo

import (
	"context"

	"mentesana/config"
	"mentesana/database"
	"mentesana/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appt models.Appointment) (*models.Appointment, error)
	GetAll(ctx context.Context) ([]models.Appointment, error)
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo returns a new AppointmentRepository instance using MongoDB.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database(config.AppConfig.MongoDBName)
	return &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}
