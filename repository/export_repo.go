package repository

import (
	"context"

	"jobportal/models"
)

// ExportRepository gathers what the job list PDF needs.
type ExportRepository struct {
	JobRepo          JobRepository
	OrganizationRepo OrganizationRepository
}

func NewExportRepository(jobs JobRepository, org OrganizationRepository) *ExportRepository {
	return &ExportRepository{JobRepo: jobs, OrganizationRepo: org}
}

func (r *ExportRepository) GetJobsForPDF(ctx context.Context) ([]*models.Job, error) {
	return r.JobRepo.ListJobs(ctx)
}

// GetOrganizationForPDF falls back to an unnamed header when none is saved.
func (r *ExportRepository) GetOrganizationForPDF(ctx context.Context) (*models.Organization, error) {
	org, err := r.OrganizationRepo.GetOrganization(ctx)
	if err != nil {
		return nil, err
	}
	if org == nil {
		org = &models.Organization{Name: "Job Portal"}
	}
	return org, nil
}
