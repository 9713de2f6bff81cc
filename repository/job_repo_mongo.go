package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jobportal/models"
)

const JobsCollection = "jobs"

type MongoJobRepo struct {
	DB *mongo.Database
}

func NewMongoJobRepo(db *mongo.Database) *MongoJobRepo {
	return &MongoJobRepo{DB: db}
}

func (r *MongoJobRepo) CreateJob(ctx context.Context, job *models.Job) error {
	now := time.Now().UTC()
	if job.ID == "" {
		job.ID = primitive.NewObjectID().Hex()
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = now
	}
	job.UpdatedAt = now

	if _, err := r.DB.Collection(JobsCollection).InsertOne(ctx, job); err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

func (r *MongoJobRepo) ListJobs(ctx context.Context) ([]*models.Job, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.DB.Collection(JobsCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer cur.Close(ctx)

	jobs := []*models.Job{}
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, fmt.Errorf("decode jobs: %w", err)
	}
	return jobs, nil
}
