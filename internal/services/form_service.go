package services

import (
	"context"
	"errors"
	"fmt"

	"contact-form-server/internal/models"
	"contact-form-server/internal/repo"
	"contact-form-server/internal/utils"
	"github.com/google/uuid"
)

const MsgFormNotFound = "Form not found"

type FormStore interface {
	Create(ctx context.Context, form *models.Form) (*models.Form, error)
	GetByID(ctx context.Context, id string) (*models.Form, error)
	List(ctx context.Context) ([]models.Form, error)
	Update(ctx context.Context, form *models.Form) error
}

// FormFields carries the client-supplied content of a form. A nil field was
// absent from the request.
type FormFields struct {
	Email *string `json:"email" form:"email"`
	Phone *Phone  `json:"phone" form:"phone"`
	Title *string `json:"title" form:"title"`
	Note  *string `json:"note" form:"note"`
}

// ApplyTo copies present fields onto form. Empty strings and a zero phone
// count as absent, so a field cannot be cleared through an update.
func (p FormFields) ApplyTo(form *models.Form) {
	if p.Email != nil && *p.Email != "" {
		form.Email = p.Email
	}
	if p.Phone != nil && *p.Phone != 0 {
		form.Phone = p.Phone.Int64()
	}
	if p.Title != nil && *p.Title != "" {
		form.Title = p.Title
	}
	if p.Note != nil && *p.Note != "" {
		form.Note = p.Note
	}
}

type FormService struct {
	forms FormStore
}

func NewFormService(forms FormStore) *FormService {
	return &FormService{forms: forms}
}

func (s *FormService) List(ctx context.Context) ([]models.Form, error) {
	forms, err := s.forms.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list forms: %w", err)
	}
	return forms, nil
}

func (s *FormService) Add(ctx context.Context, fields FormFields) (*models.Form, error) {
	form := &models.Form{
		Email: fields.Email,
		Phone: fields.Phone.Int64(),
		Title: fields.Title,
		Note:  fields.Note,
	}
	created, err := s.forms.Create(ctx, form)
	if err != nil {
		return nil, fmt.Errorf("add form: %w", err)
	}
	return created, nil
}

func (s *FormService) Update(ctx context.Context, id string, patch FormFields) (*models.Form, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.NewNotFoundError(MsgFormNotFound)
	}

	form, err := s.forms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, utils.NewNotFoundError(MsgFormNotFound)
		}
		return nil, fmt.Errorf("update form: %w", err)
	}

	patch.ApplyTo(form)

	if err := s.forms.Update(ctx, form); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, utils.NewNotFoundError(MsgFormNotFound)
		}
		return nil, fmt.Errorf("update form: %w", err)
	}
	return form, nil
}
