package user

import (
	"errors"

	"calmfix/database/repository"
	"calmfix/models"
)

func mapNotFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return u, nil
}

func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return u, nil
}

func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}

func (s *DefaultUserService) UpdatePreferences(id string, prefs models.UserPreferences) (*models.User, error) {
	u, err := s.Repo.UpdatePreferences(id, prefs)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return u, nil
}
