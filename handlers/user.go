package handlers

import (
	"errors"
	"net/http"

	"calmfix/models"
	"calmfix/services/user"
	"calmfix/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	UserService user.UserService
	Logger      *zap.Logger
}

func NewUserHandler(svc user.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{UserService: svc, Logger: logger}
}

// RegisterUserHandler handles POST /api/users.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	var req models.UserRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	usr, err := h.UserService.RegisterUser(req)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrUserExists):
			utils.JSONError(c, http.StatusBadRequest, "User already exists", "")
		case errors.Is(err, user.ErrInvalidSignup):
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		default:
			h.Logger.Error("RegisterUserHandler: registration failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Registration failed", "")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": usr})
}

// GetUsersHandler handles GET /api/users and GET /api/users?email=.
func (h *UserHandler) GetUsersHandler(c *gin.Context) {
	if email := c.Query("email"); email != "" {
		usr, err := h.UserService.GetUserByEmail(email)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				utils.JSONError(c, http.StatusNotFound, "User not found", "")
				return
			}
			h.Logger.Error("GetUsersHandler: lookup failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch user", "")
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": usr})
		return
	}

	users, err := h.UserService.GetAllUsers()
	if err != nil {
		h.Logger.Error("GetUsersHandler: list failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch users", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// UpdatePreferencesHandler handles PUT /api/users/:id/preferences.
func (h *UserHandler) UpdatePreferencesHandler(c *gin.Context) {
	var prefs models.UserPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	usr, err := h.UserService.UpdatePreferences(c.Param("id"), prefs)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			utils.JSONError(c, http.StatusNotFound, "User not found", "")
			return
		}
		h.Logger.Error("UpdatePreferencesHandler: update failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update preferences", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": usr})
}
