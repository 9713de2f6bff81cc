package repository

import (
	"context"

	"jobportal/models"
)

type JobRepository interface {
	CreateJob(ctx context.Context, job *models.Job) error
	// ListJobs returns postings newest first.
	ListJobs(ctx context.Context) ([]*models.Job, error)
}
