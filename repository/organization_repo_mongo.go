package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jobportal/models"
)

const OrganizationCollection = "organization"

type MongoOrganizationRepo struct {
	DB *mongo.Database
}

func NewMongoOrganizationRepo(db *mongo.Database) *MongoOrganizationRepo {
	return &MongoOrganizationRepo{DB: db}
}

func (r *MongoOrganizationRepo) SaveOrganization(ctx context.Context, org *models.Organization) error {
	if org.ID == "" {
		org.ID = primitive.NewObjectID().Hex()
	}
	if org.CreatedAt.IsZero() {
		org.CreatedAt = time.Now().UTC()
	}

	_, err := r.DB.Collection(OrganizationCollection).InsertOne(ctx, org)
	if err != nil {
		return fmt.Errorf("insert organization: %w", err)
	}
	return nil
}

func (r *MongoOrganizationRepo) GetOrganization(ctx context.Context) (*models.Organization, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var org models.Organization
	err := r.DB.Collection(OrganizationCollection).FindOne(ctx, bson.M{}, opts).Decode(&org)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find organization: %w", err)
	}
	return &org, nil
}
