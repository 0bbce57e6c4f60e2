package user

import (
	"sync"
	"testing"

	userRepo "calmfix/database/repository/user"
	"calmfix/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService() *DefaultUserService {
	return &DefaultUserService{Repo: userRepo.NewMemoryUserRepo()}
}

func TestRegisterUser(t *testing.T) {
	svc := newTestService()

	u, err := svc.RegisterUser(models.UserRegistration{
		Email:    " Jane@Example.com ",
		Password: "s3cret-pass",
		Name:     "Jane Doe",
		Phone:    "(555) 000-1111",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "jane@example.com", u.Email)
	assert.True(t, u.Verified)
	assert.Equal(t, models.DefaultPreferences(), u.Preferences)
	assert.NotEqual(t, "s3cret-pass", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret-pass")))
}

func TestRegisterUserDuplicate(t *testing.T) {
	svc := newTestService()
	req := models.UserRegistration{Email: "jane@example.com", Name: "Jane"}

	_, err := svc.RegisterUser(req)
	require.NoError(t, err)

	req.Email = "JANE@example.com"
	_, err = svc.RegisterUser(req)
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestRegisterUserConcurrentDuplicates(t *testing.T) {
	svc := newTestService()

	var wg sync.WaitGroup
	var mu sync.Mutex
	created := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.RegisterUser(models.UserRegistration{Email: "race@example.com", Name: "Race"}); err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	users, err := svc.GetAllUsers()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestRegisterUserRequiresEmailAndName(t *testing.T) {
	_, err := newTestService().RegisterUser(models.UserRegistration{Email: "x@example.com"})
	assert.ErrorIs(t, err, ErrInvalidSignup)
}

func TestLookupsAndPreferences(t *testing.T) {
	svc := newTestService()
	u, err := svc.RegisterUser(models.UserRegistration{Email: "sam@example.com", Name: "Sam"})
	require.NoError(t, err)

	found, err := svc.GetUserByEmail("sam@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	_, err = svc.GetUserByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	prefs := models.UserPreferences{Notifications: false, EmergencyMode: true, AutoLocation: false}
	updated, err := svc.UpdatePreferences(u.ID, prefs)
	require.NoError(t, err)
	assert.Equal(t, prefs, updated.Preferences)

	byID, err := svc.GetUserByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, prefs, byID.Preferences)

	_, err = svc.UpdatePreferences("missing", prefs)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
