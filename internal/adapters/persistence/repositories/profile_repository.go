package repositories

import (
	"context"
	"errors"

	"caremate-health/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// profileRepository implements ProfileRepository interface
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Upsert creates the profile row or updates it if one already exists
// for the user.
func (r *profileRepository) Upsert(ctx context.Context, profile *models.Profile) error {
	var existing models.Profile
	err := r.db.WithContext(ctx).Where("user_id = ?", profile.UserID).First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.db.WithContext(ctx).Create(profile).Error
		}
		return err
	}

	existing.Role = profile.Role
	existing.FullName = profile.FullName
	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return err
	}
	profile.ID = existing.ID
	return nil
}

// GetByUserID gets a profile by the owning user id
func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
