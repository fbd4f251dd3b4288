package handlers

import (
	"errors"
	"time"

	"caremate-health/internal/core/domain"
	"caremate-health/internal/core/services"
	"caremate-health/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PatientHandler handles patient-scoped endpoints
type PatientHandler struct {
	patientService *services.PatientService
}

// NewPatientHandler creates a new patient handler
func NewPatientHandler(patientService *services.PatientService) *PatientHandler {
	return &PatientHandler{patientService: patientService}
}

// BookAppointmentRequest represents appointment booking request body
type BookAppointmentRequest struct {
	DoctorID string `json:"doctor_id"`
	Date     string `json:"date"`
	TimeSlot string `json:"time_slot"`
	Reason   string `json:"reason"`
}

// CreateOrderRequest represents pharmacy order request body
type CreateOrderRequest struct {
	Items []services.OrderItemInput `json:"items"`
}

// BookAppointment books an appointment with a catalog doctor
// @Summary Book appointment
// @Tags Patient
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body BookAppointmentRequest true "Appointment data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patient/appointments [post]
func (h *PatientHandler) BookAppointment(c *fiber.Ctx) error {
	patientID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req BookAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.DoctorID == "" || req.TimeSlot == "" {
		return response.BadRequest(c, "Doctor and time slot are required")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return response.BadRequest(c, "Date must be in YYYY-MM-DD format")
	}

	input := &services.BookAppointmentInput{
		DoctorID: req.DoctorID,
		Date:     date,
		TimeSlot: req.TimeSlot,
		Reason:   req.Reason,
	}

	appt, err := h.patientService.BookAppointment(c.Context(), patientID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDoctorNotFound):
			return response.NotFound(c, "Doctor not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Appointment date cannot be in the past")
		default:
			return response.InternalServerError(c, "Failed to book appointment")
		}
	}

	return response.Created(c, "Appointment booked successfully", fiber.Map{
		"appointment": appt,
	})
}

// ListAppointments lists the patient's appointments
// @Summary List my appointments
// @Tags Patient
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /patient/appointments [get]
func (h *PatientHandler) ListAppointments(c *fiber.Ctx) error {
	patientID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	appts, err := h.patientService.ListAppointments(c.Context(), patientID)
	if err != nil {
		return response.InternalServerError(c, "Failed to retrieve appointments")
	}

	return response.Success(c, "Appointments retrieved successfully", fiber.Map{
		"appointments": appts,
		"count":        len(appts),
	})
}

// CancelAppointment cancels the patient's own appointment
// @Summary Cancel appointment
// @Tags Patient
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment public ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patient/appointments/{id}/cancel [post]
func (h *PatientHandler) CancelAppointment(c *fiber.Ctx) error {
	patientID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	err := h.patientService.CancelAppointment(c.Context(), patientID, c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAppointmentNotFound):
			return response.NotFound(c, "Appointment not found")
		case errors.Is(err, domain.ErrForbidden):
			return response.Forbidden(c, "You can only cancel your own appointments")
		default:
			return response.InternalServerError(c, "Failed to cancel appointment")
		}
	}

	return response.Success(c, "Appointment cancelled successfully", nil)
}

// CreateOrder places a pharmacy order
// @Summary Place pharmacy order
// @Tags Patient
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateOrderRequest true "Order items"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patient/orders [post]
func (h *PatientHandler) CreateOrder(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	order, err := h.patientService.CreateOrder(c.Context(), userID, req.Items)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyOrder):
			return response.BadRequest(c, "Order must contain at least one item")
		case errors.Is(err, domain.ErrMedicineNotFound):
			return response.NotFound(c, "One or more medicines were not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Item quantities must be positive")
		default:
			return response.InternalServerError(c, "Failed to place order")
		}
	}

	return response.Created(c, "Order placed successfully", fiber.Map{
		"order": order,
	})
}

// ListOrders lists the patient's orders
// @Summary List my orders
// @Tags Patient
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /patient/orders [get]
func (h *PatientHandler) ListOrders(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	orders, err := h.patientService.ListOrders(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to retrieve orders")
	}

	return response.Success(c, "Orders retrieved successfully", fiber.Map{
		"orders": orders,
		"count":  len(orders),
	})
}

// GetOrder returns one of the patient's orders
// @Summary Get order
// @Tags Patient
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order public ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patient/orders/{id} [get]
func (h *PatientHandler) GetOrder(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	order, err := h.patientService.GetOrder(c.Context(), userID, c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return response.NotFound(c, "Order not found")
		case errors.Is(err, domain.ErrForbidden):
			return response.Forbidden(c, "You can only view your own orders")
		default:
			return response.InternalServerError(c, "Failed to retrieve order")
		}
	}

	return response.Success(c, "Order retrieved successfully", fiber.Map{
		"order": order,
	})
}
