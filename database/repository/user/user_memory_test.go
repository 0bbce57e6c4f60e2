package userRepo

import (
	"testing"

	"calmfix/database/repository"
	"calmfix/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryUserRepo(t *testing.T) {
	repo := NewMemoryUserRepo()
	require.NoError(t, repo.Create(&models.User{ID: "u1", Email: "Jane@Example.com", Name: "Jane"}))

	err := repo.Create(&models.User{ID: "u2", Email: " jane@example.com ", Name: "Other"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	got, err := repo.GetByEmail("JANE@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)

	_, err = repo.GetByEmail("nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	byID, err := repo.GetByID("u1")
	require.NoError(t, err)
	assert.Equal(t, "Jane", byID.Name)

	updated, err := repo.UpdatePreferences("u1", models.UserPreferences{EmergencyMode: true})
	require.NoError(t, err)
	assert.True(t, updated.Preferences.EmergencyMode)
	assert.False(t, updated.Preferences.Notifications)

	_, err = repo.UpdatePreferences("missing", models.DefaultPreferences())
	assert.ErrorIs(t, err, repository.ErrNotFound)

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
