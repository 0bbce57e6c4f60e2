package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"calmfix/database/repository"
	"calmfix/models"
	"calmfix/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser creates a verified account with default preferences. The password
// is optional; when present only its bcrypt hash is kept.
func (s *DefaultUserService) RegisterUser(req models.UserRegistration) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	name := strings.TrimSpace(req.Name)
	if email == "" || name == "" {
		return nil, ErrInvalidSignup
	}

	userObj := models.User{
		ID:          utils.NewID(),
		Email:       email,
		Name:        name,
		Phone:       strings.TrimSpace(req.Phone),
		Verified:    true,
		CreatedAt:   time.Now().UTC(),
		Preferences: models.DefaultPreferences(),
	}

	if req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.GetLogger().Error("RegisterUser: failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("registration failed, please try again")
		}
		userObj.PasswordHash = string(hashedPassword)
	}

	if err := s.Repo.Create(&userObj); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserExists
		}
		utils.GetLogger().Error("RegisterUser: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	utils.GetLogger().Info("user registered", zap.String("userID", userObj.ID))
	return &userObj, nil
}
