package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"jobportal/models"
)

type PostgresJobRepo struct {
	DB *sql.DB
}

func NewPostgresJobRepo(db *sql.DB) *PostgresJobRepo {
	return &PostgresJobRepo{DB: db}
}

func (r *PostgresJobRepo) CreateJob(ctx context.Context, job *models.Job) error {
	now := time.Now().UTC()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = now
	}
	job.UpdatedAt = now

	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO job (company_name, job_title, description, salary, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, job.CompanyName, job.JobTitle, job.Description, job.Salary, job.CreatedAt, job.UpdatedAt).
		Scan(&job.ID)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

func (r *PostgresJobRepo) ListJobs(ctx context.Context) ([]*models.Job, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, company_name, job_title, description, salary, created_at, updated_at
		FROM job
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []*models.Job{}
	for rows.Next() {
		job := &models.Job{}
		if err := rows.Scan(&job.ID, &job.CompanyName, &job.JobTitle, &job.Description,
			&job.Salary, &job.CreatedAt, &job.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}
