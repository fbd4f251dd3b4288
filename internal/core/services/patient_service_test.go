package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"caremate-health/internal/adapters/persistence/models"
	"caremate-health/internal/catalog"
	"caremate-health/internal/core/domain"
)

type mockApptRepo struct {
	appts        map[string]*models.Appointment
	createErr    error
	statusByID   map[uint]string
	nextInternal uint
}

func newMockApptRepo() *mockApptRepo {
	return &mockApptRepo{
		appts:      make(map[string]*models.Appointment),
		statusByID: make(map[uint]string),
	}
}

func (m *mockApptRepo) Create(ctx context.Context, appt *models.Appointment) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextInternal++
	appt.ID = m.nextInternal
	m.appts[appt.PublicID] = appt
	return nil
}

func (m *mockApptRepo) GetByPublicID(ctx context.Context, publicID string) (*models.Appointment, error) {
	appt, ok := m.appts[publicID]
	if !ok {
		return nil, errors.New("record not found")
	}
	return appt, nil
}

func (m *mockApptRepo) ListByPatientID(ctx context.Context, patientID uint) ([]*models.Appointment, error) {
	var out []*models.Appointment
	for _, a := range m.appts {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockApptRepo) ListUpcoming(ctx context.Context, from, to time.Time) ([]*models.Appointment, error) {
	return nil, nil
}

func (m *mockApptRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	m.statusByID[id] = status
	return nil
}

type mockOrderRepo struct {
	orders    map[string]*models.Order
	createErr error
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[string]*models.Order)}
}

func (m *mockOrderRepo) Create(ctx context.Context, order *models.Order) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.orders[order.PublicID] = order
	return nil
}

func (m *mockOrderRepo) GetByPublicID(ctx context.Context, publicID string) (*models.Order, error) {
	order, ok := m.orders[publicID]
	if !ok {
		return nil, errors.New("record not found")
	}
	return order, nil
}

func (m *mockOrderRepo) ListByUserID(ctx context.Context, userID uint) ([]*models.Order, error) {
	var out []*models.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	return nil
}

func newPatientService(apptRepo *mockApptRepo, orderRepo *mockOrderRepo) *PatientService {
	return NewPatientService(apptRepo, orderRepo, catalog.Load())
}

func tomorrow() time.Time {
	return time.Now().Add(24 * time.Hour).Truncate(24 * time.Hour)
}

func TestBookAppointmentDenormalizesDoctorFields(t *testing.T) {
	apptRepo := newMockApptRepo()
	svc := newPatientService(apptRepo, newMockOrderRepo())

	appt, err := svc.BookAppointment(context.Background(), 7, &BookAppointmentInput{
		DoctorID: "doc-001",
		Date:     tomorrow(),
		TimeSlot: "10:00",
		Reason:   "chest pain",
	})
	if err != nil {
		t.Fatalf("BookAppointment: %v", err)
	}

	if appt.DoctorName != "Dr. Ayesha Rahman" || appt.Specialty != "Cardiology" {
		t.Errorf("doctor fields not denormalized: %q / %q", appt.DoctorName, appt.Specialty)
	}
	if appt.Status != models.AppointmentBooked {
		t.Errorf("expected status %s, got %s", models.AppointmentBooked, appt.Status)
	}
	if appt.PublicID == "" {
		t.Error("expected a public id")
	}
}

func TestBookAppointmentRejectsUnknownDoctor(t *testing.T) {
	svc := newPatientService(newMockApptRepo(), newMockOrderRepo())

	_, err := svc.BookAppointment(context.Background(), 7, &BookAppointmentInput{
		DoctorID: "doc-999",
		Date:     tomorrow(),
		TimeSlot: "10:00",
	})
	if !errors.Is(err, domain.ErrDoctorNotFound) {
		t.Fatalf("expected ErrDoctorNotFound, got %v", err)
	}
}

func TestBookAppointmentRejectsPastDate(t *testing.T) {
	svc := newPatientService(newMockApptRepo(), newMockOrderRepo())

	_, err := svc.BookAppointment(context.Background(), 7, &BookAppointmentInput{
		DoctorID: "doc-001",
		Date:     time.Now().Add(-48 * time.Hour),
		TimeSlot: "10:00",
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCancelAppointmentEnforcesOwnership(t *testing.T) {
	apptRepo := newMockApptRepo()
	svc := newPatientService(apptRepo, newMockOrderRepo())

	appt, err := svc.BookAppointment(context.Background(), 7, &BookAppointmentInput{
		DoctorID: "doc-002",
		Date:     tomorrow(),
		TimeSlot: "11:30",
	})
	if err != nil {
		t.Fatalf("BookAppointment: %v", err)
	}

	if err := svc.CancelAppointment(context.Background(), 99, appt.PublicID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for another patient, got %v", err)
	}

	if err := svc.CancelAppointment(context.Background(), 7, appt.PublicID); err != nil {
		t.Fatalf("CancelAppointment: %v", err)
	}
	if got := apptRepo.statusByID[appt.ID]; got != models.AppointmentCancelled {
		t.Errorf("expected status %s, got %s", models.AppointmentCancelled, got)
	}
}

func TestCancelAppointmentUnknownID(t *testing.T) {
	svc := newPatientService(newMockApptRepo(), newMockOrderRepo())

	err := svc.CancelAppointment(context.Background(), 7, "no-such-id")
	if !errors.Is(err, domain.ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
}

func TestCreateOrderComputesTotalFromCatalogPrices(t *testing.T) {
	orderRepo := newMockOrderRepo()
	svc := newPatientService(newMockApptRepo(), orderRepo)

	order, err := svc.CreateOrder(context.Background(), 7, []OrderItemInput{
		{MedicineID: "med-010", Quantity: 2}, // Losartan, 80 each
		{MedicineID: "med-013", Quantity: 1}, // Ibuprofen, 40
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if order.Total != 200 {
		t.Errorf("expected total 200, got %.2f", order.Total)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(order.Items))
	}
	if order.Items[0].MedicineName != "Losartan 50mg" || order.Items[0].UnitPrice != 80 {
		t.Errorf("item not enriched from catalog: %+v", order.Items[0])
	}
	if order.Status != models.OrderPlaced {
		t.Errorf("expected status %s, got %s", models.OrderPlaced, order.Status)
	}
}

func TestCreateOrderRejectsEmptyAndInvalidItems(t *testing.T) {
	svc := newPatientService(newMockApptRepo(), newMockOrderRepo())

	if _, err := svc.CreateOrder(context.Background(), 7, nil); !errors.Is(err, domain.ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}

	_, err := svc.CreateOrder(context.Background(), 7, []OrderItemInput{
		{MedicineID: "med-010", Quantity: 0},
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	_, err = svc.CreateOrder(context.Background(), 7, []OrderItemInput{
		{MedicineID: "med-999", Quantity: 1},
	})
	if !errors.Is(err, domain.ErrMedicineNotFound) {
		t.Fatalf("expected ErrMedicineNotFound, got %v", err)
	}
}

func TestGetOrderEnforcesOwnership(t *testing.T) {
	orderRepo := newMockOrderRepo()
	svc := newPatientService(newMockApptRepo(), orderRepo)

	order, err := svc.CreateOrder(context.Background(), 7, []OrderItemInput{
		{MedicineID: "med-009", Quantity: 3},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if _, err := svc.GetOrder(context.Background(), 99, order.PublicID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	got, err := svc.GetOrder(context.Background(), 7, order.PublicID)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if got.PublicID != order.PublicID {
		t.Errorf("expected order %s, got %s", order.PublicID, got.PublicID)
	}
}
