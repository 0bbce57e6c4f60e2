package catalog

import "errors"

var (
	ErrServiceNotFound      = errors.New("service not found")
	ErrProfessionalNotFound = errors.New("professional not found")
)
