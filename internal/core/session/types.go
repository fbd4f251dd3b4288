// Package session reconciles local state with the identity gateway's
// session lifecycle: who is signed in, with what role, and which
// role-scoped records are cached locally.
package session

import (
	"context"
	"time"
)

// State is the controller's lifecycle state
type State string

const (
	StateInitializing         State = "initializing"
	StateAnonymous            State = "anonymous"
	StateResolvingRole        State = "resolving_role"
	StateAuthenticatedPatient State = "authenticated_patient"
	StateAuthenticatedOther   State = "authenticated_other"
)

// Role is the closed set of profile roles. Unknown values from the
// gateway collapse to RoleUnresolved at ingress and never propagate
// as arbitrary strings.
type Role string

const (
	RolePatient    Role = "patient"
	RoleDoctor     Role = "doctor"
	RoleAdmin      Role = "admin"
	RoleUnresolved Role = "unresolved"
)

// ParseRole converts a raw role string from a gateway row
func ParseRole(raw string) Role {
	switch Role(raw) {
	case RolePatient, RoleDoctor, RoleAdmin:
		return Role(raw)
	default:
		return RoleUnresolved
	}
}

// Session is the controller's read-only shadow of a gateway session
type Session struct {
	UserID       uint   `json:"user_id"`
	Email        string `json:"email"`
	AccessToken  string `json:"-"`
	RefreshToken string `json:"-"`
}

// Profile is the registration record attached 1:1 to a session's user
type Profile struct {
	UserID   uint   `json:"user_id"`
	Role     Role   `json:"role"`
	FullName string `json:"full_name"`
}

// Appointment is the patient-scoped appointment projection
type Appointment struct {
	PublicID   string    `json:"id"`
	DoctorID   string    `json:"doctor_id"`
	DoctorName string    `json:"doctor_name"`
	Specialty  string    `json:"specialty"`
	Date       time.Time `json:"date"`
	TimeSlot   string    `json:"time_slot"`
	Reason     string    `json:"reason"`
	Status     string    `json:"status"`
}

// OrderItem is one medicine line in an order projection
type OrderItem struct {
	MedicineID   string  `json:"medicine_id"`
	MedicineName string  `json:"medicine_name"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
}

// Order is the user-scoped pharmacy order projection
type Order struct {
	PublicID  string      `json:"id"`
	Total     float64     `json:"total"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	Items     []OrderItem `json:"items"`
}

// SignUpMetadata carries the registration extras beyond credentials
type SignUpMetadata struct {
	FullName string
	Role     Role
}

// GatewayError is a fault reported by the identity gateway. Message is
// surfaced to the user verbatim in blocking alerts.
type GatewayError struct {
	Message string
}

func (e *GatewayError) Error() string {
	return e.Message
}

// NewGatewayError creates a gateway error with the given message
func NewGatewayError(message string) *GatewayError {
	return &GatewayError{Message: message}
}

// Subscription is a live session-change subscription handle
type Subscription interface {
	Unsubscribe()
}

// Gateway is the identity and storage boundary the controller drives.
// GetProfile returns (nil, nil) when no profile row exists.
type Gateway interface {
	GetCurrentSession(ctx context.Context) (*Session, error)
	SubscribeToSessionChanges(handler func(*Session)) Subscription
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignUp(ctx context.Context, email, password string, meta SignUpMetadata) (*Session, error)
	SignOut(ctx context.Context) error
	GetProfile(ctx context.Context, userID uint) (*Profile, error)
	UpsertProfile(ctx context.Context, profile Profile) error
	QueryAppointments(ctx context.Context, patientID uint) ([]Appointment, error)
	QueryOrders(ctx context.Context, userID uint) ([]Order, error)
}
