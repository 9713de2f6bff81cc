package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal/models"
	"jobportal/repository"
)

type memJobs struct{ jobs []*models.Job }

func (m *memJobs) CreateJob(context.Context, *models.Job) error { return nil }
func (m *memJobs) ListJobs(context.Context) ([]*models.Job, error) {
	return m.jobs, nil
}

type memOrg struct{ org *models.Organization }

func (m *memOrg) SaveOrganization(context.Context, *models.Organization) error { return nil }
func (m *memOrg) GetOrganization(context.Context) (*models.Organization, error) {
	return m.org, nil
}

func TestBuildJobsHTML(t *testing.T) {
	org := &models.Organization{
		Name:     "Northeastern Careers",
		Footnote: "Equal opportunity employer",
		Contacts: []models.ContactEntry{{Number: "617-555-0100", Label: "Office"}, {Number: "617-555-0199"}},
	}
	jobs := []*models.Job{{
		CompanyName: "Acme <Labs>",
		JobTitle:    "Backend Engineer",
		Description: "Go services",
		Salary:      120000,
		CreatedAt:   time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
	}}

	html, err := BuildJobsHTML(org, jobs, time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Contains(t, html, "Northeastern Careers")
	assert.Contains(t, html, "617-555-0100 (Office), 617-555-0199")
	assert.Contains(t, html, "Open positions: 1 | Generated 18-Oct-2026 09:30")
	assert.Contains(t, html, "1. Backend Engineer")
	assert.Contains(t, html, "Acme &lt;Labs&gt;")
	assert.Contains(t, html, "Posted 04-Mar-2026")
	assert.Contains(t, html, "$120,000")
	assert.Contains(t, html, "One Hundred Twenty Thousand Dollars")
	assert.Contains(t, html, "Equal opportunity employer")
}

func TestBuildJobsHTMLEmpty(t *testing.T) {
	html, err := BuildJobsHTML(&models.Organization{Name: "Portal"}, nil, time.Now())
	require.NoError(t, err)
	assert.Contains(t, html, "No open positions.")
}

func TestGenerateJobsPDFUsesRenderer(t *testing.T) {
	repo := repository.NewExportRepository(
		&memJobs{jobs: []*models.Job{{CompanyName: "Acme", JobTitle: "QA", Description: "d", Salary: 1}}},
		&memOrg{},
	)

	var got string
	pdf, err := GenerateJobsPDF(context.Background(), repo, func(_ context.Context, html string) ([]byte, error) {
		got = html
		return []byte("%PDF-fake"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), pdf)
	assert.Contains(t, got, "Job Portal")
	assert.Contains(t, got, "1. QA")
}
