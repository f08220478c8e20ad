package services

import "errors"

var (
	ErrValidation = errors.New("validation failed")
	// ErrNotFound also covers rows owned by another user.
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	ErrStorage  = errors.New("storage provider error")
	ErrMail     = errors.New("mail transport error")
)
