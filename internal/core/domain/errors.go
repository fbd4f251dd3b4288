package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrDuplicateEntry     = errors.New("duplicate entry")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// User / profile errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrProfileNotFound   = errors.New("profile not found")
)

// Booking / order errors
var (
	ErrDoctorNotFound      = errors.New("doctor not found in catalog")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrMedicineNotFound    = errors.New("medicine not found in catalog")
	ErrEmptyOrder          = errors.New("order has no items")
)
