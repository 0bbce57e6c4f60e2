package handlers

import (
	"sync"

	"calmfix/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// validateUrgency accepts the two urgency levels a booking or quote may carry.
func validateUrgency(fl validator.FieldLevel) bool {
	_, ok := models.NormalizeUrgency(fl.Field().String())
	return ok
}

// RegisterValidators installs the custom binding tags used by request models.
func RegisterValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("urgency", validateUrgency)
		}
	})
}
