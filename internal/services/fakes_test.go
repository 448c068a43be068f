package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"contact-form-server/internal/models"
	"contact-form-server/internal/repo"
	"github.com/google/uuid"
)

type memUserStore struct {
	mu    sync.Mutex
	users map[string]models.User
	err   error
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[string]models.User{}}
}

func (m *memUserStore) Create(_ context.Context, username, passwordHash string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if _, ok := m.users[username]; ok {
		return nil, fmt.Errorf("insert user: %w", repo.ErrDuplicate)
	}
	u := models.User{ID: uuid.NewString(), Username: username, PasswordHash: passwordHash, CreatedAt: time.Now()}
	m.users[username] = u
	return &u, nil
}

func (m *memUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[username]
	if !ok {
		return nil, fmt.Errorf("get user by username: %w", repo.ErrNotFound)
	}
	return &u, nil
}

func (m *memUserStore) ExistsByUsername(_ context.Context, username string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[username]
	return ok, nil
}

type memFormStore struct {
	mu      sync.Mutex
	forms   map[string]models.Form
	order   []string
	updates int
	err     error
}

func newMemFormStore() *memFormStore {
	return &memFormStore{forms: map[string]models.Form{}}
}

func (m *memFormStore) Create(_ context.Context, form *models.Form) (*models.Form, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	form.ID = uuid.NewString()
	form.CreatedAt = time.Now()
	form.UpdatedAt = form.CreatedAt
	m.forms[form.ID] = *form
	m.order = append(m.order, form.ID)
	return form, nil
}

func (m *memFormStore) GetByID(_ context.Context, id string) (*models.Form, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	f, ok := m.forms[id]
	if !ok {
		return nil, fmt.Errorf("get form: %w", repo.ErrNotFound)
	}
	return &f, nil
}

func (m *memFormStore) List(_ context.Context) ([]models.Form, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.Form, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.forms[id])
	}
	return out, nil
}

func (m *memFormStore) Update(_ context.Context, form *models.Form) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.forms[form.ID]; !ok {
		return fmt.Errorf("update form: %w", repo.ErrNotFound)
	}
	m.updates++
	m.forms[form.ID] = *form
	return nil
}

func ptr[T any](v T) *T { return &v }
