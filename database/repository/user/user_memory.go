package userRepo

import (
	"fmt"
	"strings"
	"sync"

	"calmfix/database/repository"
	"calmfix/models"
)

// MemoryUserRepo keeps users in process memory; contents are lost on restart.
type MemoryUserRepo struct {
	mu      sync.RWMutex
	users   []*models.User
	byEmail map[string]*models.User
}

// NewMemoryUserRepo creates an empty in-memory UserRepository.
func NewMemoryUserRepo() UserRepository {
	return &MemoryUserRepo{byEmail: make(map[string]*models.User)}
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *MemoryUserRepo) GetByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("user with id %s: %w", id, repository.ErrNotFound)
}

func (r *MemoryUserRepo) GetByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[emailKey(email)]
	if !ok {
		return nil, fmt.Errorf("user with email %s: %w", email, repository.ErrNotFound)
	}
	cp := *u
	return &cp, nil
}

func (r *MemoryUserRepo) GetAll() ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users, nil
}

// Create checks and inserts under one lock so concurrent signups cannot both win.
func (r *MemoryUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := emailKey(user.Email)
	if _, exists := r.byEmail[key]; exists {
		return fmt.Errorf("user with email %s: %w", user.Email, repository.ErrDuplicate)
	}
	stored := *user
	r.users = append(r.users, &stored)
	r.byEmail[key] = &stored
	return nil
}

func (r *MemoryUserRepo) UpdatePreferences(id string, prefs models.UserPreferences) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == id {
			u.Preferences = prefs
			cp := *u
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("user with id %s: %w", id, repository.ErrNotFound)
}
