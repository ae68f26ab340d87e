package memory

import (
	"context"
	"strings"

	"mrtrack/internal/domain"
	"mrtrack/internal/port"
)

type userRepo struct {
	s *Store
}

// NewUserRepo creates an in-memory UserRepository.
func NewUserRepo(s *Store) port.UserRepository {
	return &userRepo{s: s}
}

func (r *userRepo) Create(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.users {
		if strings.EqualFold(r.s.users[i].Username, user.Username) {
			return domain.ErrDuplicateUsername
		}
	}
	r.s.users = append(r.s.users, *user)
	return nil
}

func (r *userRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range r.s.users {
		if r.s.users[i].ID == id {
			u := r.s.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

// GetByUsername matches case-insensitively.
func (r *userRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range r.s.users {
		if strings.EqualFold(r.s.users[i].Username, username) {
			u := r.s.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *userRepo) GetByFieldRepID(_ context.Context, fieldRepID string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for i := range r.s.users {
		if fieldRepID != "" && r.s.users[i].FieldRepID == fieldRepID {
			u := r.s.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *userRepo) SetPassword(_ context.Context, id, passwordHash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.users {
		if r.s.users[i].ID == id {
			r.s.users[i].PasswordHash = passwordHash
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *userRepo) SetActiveForFieldRep(_ context.Context, fieldRepID string, active bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.users {
		if fieldRepID != "" && r.s.users[i].FieldRepID == fieldRepID {
			r.s.users[i].IsActive = active
		}
	}
	return nil
}
