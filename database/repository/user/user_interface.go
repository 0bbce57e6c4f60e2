package userRepo

import "calmfix/models"

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(email string) (*models.User, error)
	// GetAll retrieves all users in signup order.
	GetAll() ([]models.User, error)
	// Create inserts a new user record; a taken email yields repository.ErrDuplicate.
	Create(user *models.User) error
	// UpdatePreferences replaces the preferences of an existing user.
	UpdatePreferences(id string, prefs models.UserPreferences) (*models.User, error)
}
