package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"contact-form-server/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormFormRepo struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewGormFormRepo(db *gorm.DB, timeout time.Duration) *GormFormRepo {
	return &GormFormRepo{db: db, timeout: timeout}
}

func (r *GormFormRepo) Create(ctx context.Context, form *models.Form) (*models.Form, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	form.ID = uuid.NewString()
	if err := r.db.WithContext(ctx).Create(form).Error; err != nil {
		return nil, fmt.Errorf("insert form: %w", err)
	}
	return form, nil
}

func (r *GormFormRepo) GetByID(ctx context.Context, id string) (*models.Form, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var form models.Form
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&form).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("get form: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("get form: %w", err)
	}
	return &form, nil
}

func (r *GormFormRepo) List(ctx context.Context) ([]models.Form, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	forms := make([]models.Form, 0)
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&forms).Error; err != nil {
		return nil, fmt.Errorf("list forms: %w", err)
	}
	return forms, nil
}

func (r *GormFormRepo) Update(ctx context.Context, form *models.Form) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	now := time.Now()
	res := r.db.WithContext(ctx).
		Model(&models.Form{}).
		Where("id = ?", form.ID).
		Updates(map[string]any{
			"email":      form.Email,
			"phone":      form.Phone,
			"title":      form.Title,
			"note":       form.Note,
			"updated_at": now,
		})
	if res.Error != nil {
		return fmt.Errorf("update form: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update form: %w", ErrNotFound)
	}
	form.UpdatedAt = now
	return nil
}
