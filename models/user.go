// models/user.go
package models

import "time"

// UserPreferences are the toggles exposed on the settings page.
type UserPreferences struct {
	Notifications bool `bson:"notifications" json:"notifications"`
	EmergencyMode bool `bson:"emergencyMode" json:"emergencyMode"`
	AutoLocation  bool `bson:"autoLocation" json:"autoLocation"`
}

// DefaultPreferences applies to every new account.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		Notifications: true,
		EmergencyMode: false,
		AutoLocation:  true,
	}
}

// User represents a platform user.
type User struct {
	ID           string          `bson:"id" json:"id"`
	Email        string          `bson:"email" json:"email"`
	Name         string          `bson:"name" json:"name"`
	Phone        string          `bson:"phone" json:"phone"`
	PasswordHash string          `bson:"password_hash" json:"-"`
	Verified     bool            `bson:"verified" json:"verified"`
	CreatedAt    time.Time       `bson:"created_at" json:"createdAt"`
	Preferences  UserPreferences `bson:"preferences" json:"preferences"`
}

// UserRegistration is the body of POST /api/users.
type UserRegistration struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
}
