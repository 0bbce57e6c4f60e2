package user

import (
	userRepo "calmfix/database/repository/user"
	"calmfix/models"
)

type UserService interface {
	RegisterUser(req models.UserRegistration) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	GetAllUsers() ([]models.User, error)
	UpdatePreferences(id string, prefs models.UserPreferences) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
