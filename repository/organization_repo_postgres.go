package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"jobportal/models"
)

type PostgresOrganizationRepo struct {
	DB *sql.DB
}

func NewPostgresOrganizationRepo(db *sql.DB) *PostgresOrganizationRepo {
	return &PostgresOrganizationRepo{DB: db}
}

func (r *PostgresOrganizationRepo) SaveOrganization(ctx context.Context, org *models.Organization) error {
	if org.CreatedAt.IsZero() {
		org.CreatedAt = time.Now().UTC()
	}

	contacts, err := json.Marshal(org.Contacts)
	if err != nil {
		return err
	}

	err = r.DB.QueryRowContext(ctx, `
		INSERT INTO organization (name, address, email, website, footnote, contacts, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, org.Name, org.Address, org.Email, org.Website, org.Footnote, contacts, org.CreatedAt).
		Scan(&org.ID)
	if err != nil {
		return fmt.Errorf("insert organization: %w", err)
	}
	return nil
}

func (r *PostgresOrganizationRepo) GetOrganization(ctx context.Context) (*models.Organization, error) {
	org := &models.Organization{}
	var contacts []byte

	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, address, email, website, footnote, contacts, created_at
		FROM organization
		ORDER BY id DESC LIMIT 1
	`).Scan(&org.ID, &org.Name, &org.Address, &org.Email, &org.Website, &org.Footnote, &contacts, &org.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find organization: %w", err)
	}

	if len(contacts) > 0 {
		if err := json.Unmarshal(contacts, &org.Contacts); err != nil {
			return nil, fmt.Errorf("decode contacts: %w", err)
		}
	}
	return org, nil
}
