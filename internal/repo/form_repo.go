package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"contact-form-server/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type FormRepo struct {
	db      DBTX
	timeout time.Duration
}

func NewFormRepo(db DBTX, timeout time.Duration) *FormRepo {
	return &FormRepo{db: db, timeout: timeout}
}

func (r *FormRepo) Create(ctx context.Context, form *models.Form) (*models.Form, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	form.ID = uuid.NewString()
	row := r.db.QueryRow(ctx, `
		INSERT INTO forms (id, email, phone, title, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`, form.ID, form.Email, form.Phone, form.Title, form.Note)

	if err := row.Scan(&form.CreatedAt, &form.UpdatedAt); err != nil {
		return nil, fmt.Errorf("insert form: %w", err)
	}
	return form, nil
}

func (r *FormRepo) GetByID(ctx context.Context, id string) (*models.Form, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.db.QueryRow(ctx, `
		SELECT id, email, phone, title, note, created_at, updated_at
		FROM forms
		WHERE id = $1
	`, id)

	var form models.Form
	if err := scanForm(row, &form); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("get form: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("get form: %w", err)
	}
	return &form, nil
}

func (r *FormRepo) List(ctx context.Context) ([]models.Form, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, email, phone, title, note, created_at, updated_at
		FROM forms
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("list forms: %w", err)
	}
	defer rows.Close()

	results := make([]models.Form, 0)
	for rows.Next() {
		var form models.Form
		if err := scanForm(rows, &form); err != nil {
			return nil, fmt.Errorf("scan form: %w", err)
		}
		results = append(results, form)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate forms: %w", err)
	}

	return results, nil
}

// Update overwrites every content column with the values on form.
func (r *FormRepo) Update(ctx context.Context, form *models.Form) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := r.db.QueryRow(ctx, `
		UPDATE forms
		SET email = $2, phone = $3, title = $4, note = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`, form.ID, form.Email, form.Phone, form.Title, form.Note)

	if err := row.Scan(&form.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("update form: %w", ErrNotFound)
		}
		return fmt.Errorf("update form: %w", err)
	}
	return nil
}

func scanForm(row pgx.Row, form *models.Form) error {
	return row.Scan(
		&form.ID,
		&form.Email,
		&form.Phone,
		&form.Title,
		&form.Note,
		&form.CreatedAt,
		&form.UpdatedAt,
	)
}
