package repository

import (
	"context"

	"jobportal/models"
)

// OrganizationRepository keeps every saved header; the latest one wins.
// GetOrganization returns (nil, nil) when nothing has been saved.
type OrganizationRepository interface {
	SaveOrganization(ctx context.Context, org *models.Organization) error
	GetOrganization(ctx context.Context) (*models.Organization, error)
}
