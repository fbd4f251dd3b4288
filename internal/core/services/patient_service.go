package services

import (
	"context"
	"log"
	"time"

	"caremate-health/internal/adapters/persistence/models"
	"caremate-health/internal/adapters/persistence/repositories"
	"caremate-health/internal/catalog"
	"caremate-health/internal/core/domain"

	"github.com/google/uuid"
)

// PatientService handles patient-scoped appointments and pharmacy
// orders. Doctor and medicine references are validated against the
// static catalog before any row is written.
type PatientService struct {
	apptRepo  repositories.AppointmentRepository
	orderRepo repositories.OrderRepository
	catalog   *catalog.Catalog
}

// NewPatientService creates a new patient service
func NewPatientService(
	apptRepo repositories.AppointmentRepository,
	orderRepo repositories.OrderRepository,
	cat *catalog.Catalog,
) *PatientService {
	return &PatientService{
		apptRepo:  apptRepo,
		orderRepo: orderRepo,
		catalog:   cat,
	}
}

// BookAppointmentInput represents an appointment booking request
type BookAppointmentInput struct {
	DoctorID string    `json:"doctor_id"`
	Date     time.Time `json:"date"`
	TimeSlot string    `json:"time_slot"`
	Reason   string    `json:"reason"`
}

// BookAppointment books an appointment for a patient with a catalog
// doctor
func (s *PatientService) BookAppointment(ctx context.Context, patientID uint, input *BookAppointmentInput) (*models.Appointment, error) {
	doctor, ok := s.catalog.DoctorByID(input.DoctorID)
	if !ok {
		return nil, domain.ErrDoctorNotFound
	}
	if input.Date.Before(time.Now().Truncate(24 * time.Hour)) {
		return nil, domain.ErrInvalidInput
	}

	appt := &models.Appointment{
		PublicID:   uuid.New().String(),
		PatientID:  patientID,
		DoctorID:   doctor.ID,
		DoctorName: doctor.Name,
		Specialty:  doctor.Specialty,
		Date:       input.Date,
		TimeSlot:   input.TimeSlot,
		Reason:     input.Reason,
		Status:     models.AppointmentBooked,
	}
	if err := s.apptRepo.Create(ctx, appt); err != nil {
		return nil, err
	}

	log.Printf("✅ Appointment booked: %s (patient=%d, doctor=%s)", appt.PublicID, patientID, doctor.ID)
	return appt, nil
}

// ListAppointments lists a patient's appointments, newest date first
func (s *PatientService) ListAppointments(ctx context.Context, patientID uint) ([]*models.Appointment, error) {
	return s.apptRepo.ListByPatientID(ctx, patientID)
}

// CancelAppointment cancels a patient's own appointment
func (s *PatientService) CancelAppointment(ctx context.Context, patientID uint, publicID string) error {
	appt, err := s.apptRepo.GetByPublicID(ctx, publicID)
	if err != nil {
		return domain.ErrAppointmentNotFound
	}
	if appt.PatientID != patientID {
		return domain.ErrForbidden
	}
	return s.apptRepo.UpdateStatus(ctx, appt.ID, models.AppointmentCancelled)
}

// OrderItemInput represents one medicine line in an order request
type OrderItemInput struct {
	MedicineID string `json:"medicine_id"`
	Quantity   int    `json:"quantity"`
}

// CreateOrder places a pharmacy order; the total is computed from
// catalog prices, never trusted from the client.
func (s *PatientService) CreateOrder(ctx context.Context, userID uint, items []OrderItemInput) (*models.Order, error) {
	if len(items) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	order := &models.Order{
		PublicID: uuid.New().String(),
		UserID:   userID,
		Status:   models.OrderPlaced,
	}
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
		med, ok := s.catalog.MedicineByID(item.MedicineID)
		if !ok {
			return nil, domain.ErrMedicineNotFound
		}
		order.Items = append(order.Items, models.OrderItem{
			MedicineID:   med.ID,
			MedicineName: med.Name,
			Quantity:     item.Quantity,
			UnitPrice:    med.Price,
		})
		order.Total += med.Price * float64(item.Quantity)
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	log.Printf("✅ Order placed: %s (user=%d, total=%.2f)", order.PublicID, userID, order.Total)
	return order, nil
}

// ListOrders lists a user's orders, newest first
func (s *PatientService) ListOrders(ctx context.Context, userID uint) ([]*models.Order, error) {
	return s.orderRepo.ListByUserID(ctx, userID)
}

// GetOrder returns a user's own order
func (s *PatientService) GetOrder(ctx context.Context, userID uint, publicID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	if order.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return order, nil
}
