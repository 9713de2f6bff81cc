package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"jobportal/models"
)

// uniqueViolation is the SQLSTATE postgres reports for a duplicate key.
const uniqueViolation = "23505"

type PostgresUserRepo struct {
	DB *sql.DB
}

func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{DB: db}
}

const userColumns = `id, full_name, email, password_hash, image_path, type, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	user := &models.User{}
	var image sql.NullString
	err := row.Scan(&user.ID, &user.FullName, &user.Email, &user.Password, &image,
		&user.Type, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if image.Valid {
		user.ImagePath = &image.String
	}
	return user, nil
}

func (r *PostgresUserRepo) CreateUser(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	user.Email = NormalizeEmail(user.Email)

	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO app_user (full_name, email, password_hash, image_path, type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, user.FullName, user.Email, user.Password, user.ImagePath, user.Type, user.CreatedAt, user.UpdatedAt).
		Scan(&user.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrEmailExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *PostgresUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM app_user WHERE email = $1`, NormalizeEmail(email))
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (r *PostgresUserRepo) ListUsers(ctx context.Context) ([]*models.User, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+userColumns+` FROM app_user ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		user.Password = ""
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *PostgresUserRepo) UpdateUser(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now().UTC()
	res, err := r.DB.ExecContext(ctx, `
		UPDATE app_user SET full_name = $1, password_hash = $2, updated_at = $3
		WHERE email = $4
	`, user.FullName, user.Password, user.UpdatedAt, NormalizeEmail(user.Email))
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return expectOneRow(res)
}

func (r *PostgresUserRepo) SetImagePath(ctx context.Context, email, path string) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE app_user SET image_path = $1, updated_at = $2 WHERE email = $3`,
		path, time.Now().UTC(), NormalizeEmail(email))
	if err != nil {
		return fmt.Errorf("set image path: %w", err)
	}
	return expectOneRow(res)
}

func (r *PostgresUserRepo) DeleteUser(ctx context.Context, email string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM app_user WHERE email = $1`, NormalizeEmail(email))
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return expectOneRow(res)
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
