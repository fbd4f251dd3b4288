package repositories

import (
	"context"
	"time"

	"caremate-health/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// ProfileRepository defines profile repository interface
type ProfileRepository interface {
	Upsert(ctx context.Context, profile *models.Profile) error
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) error
}

// AppointmentRepository defines appointment repository interface
type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByPublicID(ctx context.Context, publicID string) (*models.Appointment, error)
	ListByPatientID(ctx context.Context, patientID uint) ([]*models.Appointment, error)
	ListUpcoming(ctx context.Context, from, to time.Time) ([]*models.Appointment, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}

// OrderRepository defines order repository interface
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByPublicID(ctx context.Context, publicID string) (*models.Order, error)
	ListByUserID(ctx context.Context, userID uint) ([]*models.Order, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}
