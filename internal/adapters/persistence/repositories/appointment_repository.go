package repositories

import (
	"context"
	"time"

	"caremate-health/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// appointmentRepository implements AppointmentRepository interface
type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a new appointment repository
func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

// Create creates a new appointment
func (r *appointmentRepository) Create(ctx context.Context, appt *models.Appointment) error {
	return r.db.WithContext(ctx).Create(appt).Error
}

// GetByPublicID gets an appointment by its public id
func (r *appointmentRepository) GetByPublicID(ctx context.Context, publicID string) (*models.Appointment, error) {
	var appt models.Appointment
	err := r.db.WithContext(ctx).Where("public_id = ?", publicID).First(&appt).Error
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

// ListByPatientID lists a patient's appointments, newest date first
func (r *appointmentRepository) ListByPatientID(ctx context.Context, patientID uint) ([]*models.Appointment, error) {
	var appts []*models.Appointment
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("date DESC").
		Find(&appts).Error
	if err != nil {
		return nil, err
	}
	return appts, nil
}

// ListUpcoming lists booked appointments in the [from, to) window
func (r *appointmentRepository) ListUpcoming(ctx context.Context, from, to time.Time) ([]*models.Appointment, error) {
	var appts []*models.Appointment
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ? AND status IN ?", from, to,
			[]string{models.AppointmentBooked, models.AppointmentConfirmed}).
		Order("date ASC").
		Find(&appts).Error
	if err != nil {
		return nil, err
	}
	return appts, nil
}

// UpdateStatus updates an appointment's status
func (r *appointmentRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("status", status).Error
}
