// Package identity adapts the database-backed auth machinery to the
// gateway boundary the session controller drives: sessions, profile
// rows, scoped record queries and session-change notifications.
package identity

import (
	"context"
	"errors"
	"sync"

	"caremate-health/internal/adapters/persistence/models"
	"caremate-health/internal/adapters/persistence/repositories"
	"caremate-health/internal/core/services"
	"caremate-health/internal/core/session"

	"gorm.io/gorm"
)

// Gateway implements session.Gateway over the auth service and
// repositories. It retains the most recent process-local session the
// way a client keeps one in storage, and fans session-change
// notifications out to subscribers.
type Gateway struct {
	auth        *services.AuthService
	profileRepo repositories.ProfileRepository
	apptRepo    repositories.AppointmentRepository
	orderRepo   repositories.OrderRepository

	mu      sync.RWMutex
	current *session.Session
	subs    map[uint64]func(*session.Session)
	nextSub uint64
}

// NewGateway creates a new identity gateway
func NewGateway(
	auth *services.AuthService,
	profileRepo repositories.ProfileRepository,
	apptRepo repositories.AppointmentRepository,
	orderRepo repositories.OrderRepository,
) *Gateway {
	return &Gateway{
		auth:        auth,
		profileRepo: profileRepo,
		apptRepo:    apptRepo,
		orderRepo:   orderRepo,
		subs:        make(map[uint64]func(*session.Session)),
	}
}

// GetCurrentSession returns the retained session if its access token
// still validates, else nil.
func (g *Gateway) GetCurrentSession(_ context.Context) (*session.Session, error) {
	g.mu.RLock()
	current := g.current
	g.mu.RUnlock()

	if current == nil {
		return nil, nil
	}
	if _, err := g.auth.ValidateAccessToken(current.AccessToken); err != nil {
		g.mu.Lock()
		if g.current == current {
			g.current = nil
		}
		g.mu.Unlock()
		return nil, nil
	}
	return current, nil
}

type subscription struct {
	g  *Gateway
	id uint64
}

func (s *subscription) Unsubscribe() {
	s.g.mu.Lock()
	delete(s.g.subs, s.id)
	s.g.mu.Unlock()
}

// SubscribeToSessionChanges registers a handler for session-change
// notifications and returns its handle.
func (g *Gateway) SubscribeToSessionChanges(handler func(*session.Session)) session.Subscription {
	g.mu.Lock()
	g.nextSub++
	id := g.nextSub
	g.subs[id] = handler
	g.mu.Unlock()
	return &subscription{g: g, id: id}
}

// EmitSessionChange notifies subscribers of an externally caused
// session change: revocation elsewhere, expiry, forced logout. A nil
// session means signed out.
func (g *Gateway) EmitSessionChange(s *session.Session) {
	g.mu.Lock()
	g.current = s
	handlers := make([]func(*session.Session), 0, len(g.subs))
	for _, h := range g.subs {
		handlers = append(handlers, h)
	}
	g.mu.Unlock()

	for _, h := range handlers {
		h(s)
	}
}

// SignIn authenticates and retains the resulting session
func (g *Gateway) SignIn(ctx context.Context, email, password string) (*session.Session, error) {
	result, err := g.auth.Login(ctx, &services.LoginInput{Email: email, Password: password})
	if err != nil {
		return nil, gatewayError(err)
	}
	return g.retain(result), nil
}

// SignUp registers credentials and retains the resulting session. The
// profile row is written by the caller via UpsertProfile; sign-up
// alone does not complete a registration.
func (g *Gateway) SignUp(ctx context.Context, email, password string, _ session.SignUpMetadata) (*session.Session, error) {
	result, err := g.auth.Register(ctx, &services.RegisterInput{Email: email, Password: password})
	if err != nil {
		return nil, gatewayError(err)
	}
	return g.retain(result), nil
}

// SignOut revokes the retained session's refresh token. The retained
// session is dropped regardless of the revocation outcome.
func (g *Gateway) SignOut(ctx context.Context) error {
	g.mu.Lock()
	current := g.current
	g.current = nil
	g.mu.Unlock()

	if current == nil {
		return nil
	}
	if err := g.auth.Logout(ctx, current.RefreshToken); err != nil {
		return gatewayError(err)
	}
	return nil
}

// GetProfile returns the profile row for a user, or (nil, nil) when
// none exists.
func (g *Gateway) GetProfile(ctx context.Context, userID uint) (*session.Profile, error) {
	profile, err := g.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session.Profile{
		UserID:   profile.UserID,
		Role:     session.ParseRole(profile.Role),
		FullName: profile.FullName,
	}, nil
}

// UpsertProfile writes the profile row for a user
func (g *Gateway) UpsertProfile(ctx context.Context, profile session.Profile) error {
	row := &models.Profile{
		UserID:   profile.UserID,
		Role:     string(profile.Role),
		FullName: profile.FullName,
	}
	if err := g.profileRepo.Upsert(ctx, row); err != nil {
		return gatewayError(err)
	}
	return nil
}

// QueryAppointments returns a patient's appointments, newest date
// first.
func (g *Gateway) QueryAppointments(ctx context.Context, patientID uint) ([]session.Appointment, error) {
	rows, err := g.apptRepo.ListByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	out := make([]session.Appointment, 0, len(rows))
	for _, a := range rows {
		out = append(out, session.Appointment{
			PublicID:   a.PublicID,
			DoctorID:   a.DoctorID,
			DoctorName: a.DoctorName,
			Specialty:  a.Specialty,
			Date:       a.Date,
			TimeSlot:   a.TimeSlot,
			Reason:     a.Reason,
			Status:     a.Status,
		})
	}
	return out, nil
}

// QueryOrders returns a user's orders, newest first
func (g *Gateway) QueryOrders(ctx context.Context, userID uint) ([]session.Order, error) {
	rows, err := g.orderRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]session.Order, 0, len(rows))
	for _, o := range rows {
		items := make([]session.OrderItem, 0, len(o.Items))
		for _, it := range o.Items {
			items = append(items, session.OrderItem{
				MedicineID:   it.MedicineID,
				MedicineName: it.MedicineName,
				Quantity:     it.Quantity,
				UnitPrice:    it.UnitPrice,
			})
		}
		out = append(out, session.Order{
			PublicID:  o.PublicID,
			Total:     o.Total,
			Status:    o.Status,
			CreatedAt: o.CreatedAt,
			Items:     items,
		})
	}
	return out, nil
}

// retain stores the session from an auth response as current
func (g *Gateway) retain(result *services.AuthResponse) *session.Session {
	s := &session.Session{
		UserID:       result.User.ID,
		Email:        result.User.Email,
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	}
	g.mu.Lock()
	g.current = s
	g.mu.Unlock()
	return s
}

// gatewayError converts an auth fault to a session.GatewayError whose
// message is safe to show verbatim.
func gatewayError(err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		return session.NewGatewayError("Invalid email or password")
	case errors.Is(err, services.ErrUserAlreadyExists):
		return session.NewGatewayError("An account with this email already exists")
	case errors.Is(err, services.ErrUserInactive):
		return session.NewGatewayError("This account has been deactivated")
	default:
		return session.NewGatewayError(err.Error())
	}
}
