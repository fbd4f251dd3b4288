package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// mockGateway is an in-memory Gateway for controller tests.
type mockGateway struct {
	mu sync.Mutex

	current      *Session
	profiles     map[uint]*Profile
	appointments map[uint][]Appointment
	orders       map[uint][]Order

	profileErr error
	apptErr    error
	orderErr   error
	signInErr  error
	signUpErr  error
	upsertErr  error
	signOutErr error

	profileDelay map[uint]time.Duration

	signOutCalls int
	apptCalls    int
	orderCalls   int
	upserted     []Profile

	handler    func(*Session)
	subCount   int
	unsubCount int

	signInGate    chan struct{}
	signInStarted chan struct{}
}

func newMockGateway() *mockGateway {
	return &mockGateway{
		profiles:     make(map[uint]*Profile),
		appointments: make(map[uint][]Appointment),
		orders:       make(map[uint][]Order),
		profileDelay: make(map[uint]time.Duration),
	}
}

func (g *mockGateway) GetCurrentSession(_ context.Context) (*Session, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current, nil
}

type mockSubscription struct {
	g *mockGateway
}

func (s *mockSubscription) Unsubscribe() {
	s.g.mu.Lock()
	s.g.unsubCount++
	s.g.handler = nil
	s.g.mu.Unlock()
}

func (g *mockGateway) SubscribeToSessionChanges(handler func(*Session)) Subscription {
	g.mu.Lock()
	g.handler = handler
	g.subCount++
	g.mu.Unlock()
	return &mockSubscription{g: g}
}

// emit delivers a session-change notification like the real gateway
// hub would.
func (g *mockGateway) emit(s *Session) {
	g.mu.Lock()
	handler := g.handler
	g.mu.Unlock()
	if handler != nil {
		handler(s)
	}
}

func (g *mockGateway) SignIn(_ context.Context, email, _ string) (*Session, error) {
	if g.signInStarted != nil {
		g.signInStarted <- struct{}{}
	}
	if g.signInGate != nil {
		<-g.signInGate
	}
	if g.signInErr != nil {
		return nil, g.signInErr
	}
	s := &Session{UserID: 1, Email: email}
	g.mu.Lock()
	g.current = s
	g.mu.Unlock()
	return s, nil
}

func (g *mockGateway) SignUp(_ context.Context, email, _ string, _ SignUpMetadata) (*Session, error) {
	if g.signUpErr != nil {
		return nil, g.signUpErr
	}
	s := &Session{UserID: 2, Email: email}
	g.mu.Lock()
	g.current = s
	g.mu.Unlock()
	return s, nil
}

func (g *mockGateway) SignOut(_ context.Context) error {
	g.mu.Lock()
	g.signOutCalls++
	g.current = nil
	g.mu.Unlock()
	return g.signOutErr
}

func (g *mockGateway) GetProfile(_ context.Context, userID uint) (*Profile, error) {
	g.mu.Lock()
	delay := g.profileDelay[userID]
	g.mu.Unlock()
	if delay > 0 {
		time.Sleep(delay)
	}
	if g.profileErr != nil {
		return nil, g.profileErr
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.profiles[userID], nil
}

func (g *mockGateway) UpsertProfile(_ context.Context, profile Profile) error {
	if g.upsertErr != nil {
		return g.upsertErr
	}
	g.mu.Lock()
	g.upserted = append(g.upserted, profile)
	g.profiles[profile.UserID] = &profile
	g.mu.Unlock()
	return nil
}

func (g *mockGateway) QueryAppointments(_ context.Context, patientID uint) ([]Appointment, error) {
	g.mu.Lock()
	g.apptCalls++
	g.mu.Unlock()
	if g.apptErr != nil {
		return nil, g.apptErr
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.appointments[patientID], nil
}

func (g *mockGateway) QueryOrders(_ context.Context, userID uint) ([]Order, error) {
	g.mu.Lock()
	g.orderCalls++
	g.mu.Unlock()
	if g.orderErr != nil {
		return nil, g.orderErr
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.orders[userID], nil
}

func patientGateway(userID uint, appts int, orders int) *mockGateway {
	g := newMockGateway()
	g.profiles[userID] = &Profile{UserID: userID, Role: RolePatient, FullName: "Test Patient"}
	for i := 0; i < appts; i++ {
		g.appointments[userID] = append(g.appointments[userID], Appointment{
			PublicID: "appt", DoctorID: "doc-001", Status: "BOOKED",
		})
	}
	for i := 0; i < orders; i++ {
		g.orders[userID] = append(g.orders[userID], Order{PublicID: "ord", Status: "PLACED"})
	}
	return g
}

func TestStartWithoutSessionBecomesAnonymous(t *testing.T) {
	g := newMockGateway()
	c := NewController(g)
	defer c.Close()

	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	snap := c.Snapshot()
	if snap.State != StateAnonymous {
		t.Errorf("expected anonymous state, got %s", snap.State)
	}
	if len(snap.Appointments) != 0 || len(snap.Orders) != 0 {
		t.Errorf("expected empty caches, got %d appointments, %d orders",
			len(snap.Appointments), len(snap.Orders))
	}
}

func TestStartWithPatientSessionCachesScopedRecords(t *testing.T) {
	g := patientGateway(1, 2, 1)
	g.current = &Session{UserID: 1, Email: "p@example.com"}

	c := NewController(g)
	defer c.Close()
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	snap := c.Snapshot()
	if snap.State != StateAuthenticatedPatient {
		t.Fatalf("expected authenticated patient, got %s", snap.State)
	}
	if snap.Role != RolePatient {
		t.Errorf("expected patient role, got %s", snap.Role)
	}
	if len(snap.Appointments) != 2 {
		t.Errorf("expected 2 appointments, got %d", len(snap.Appointments))
	}
	if len(snap.Orders) != 1 {
		t.Errorf("expected 1 order, got %d", len(snap.Orders))
	}
	if snap.FetchBanner {
		t.Error("expected no banner after successful fetch")
	}
}

func TestPartialFetchFailureKeepsPriorCacheAndRaisesBanner(t *testing.T) {
	g := patientGateway(1, 1, 1)
	g.current = &Session{UserID: 1}

	c := NewController(g)
	defer c.Close()
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if got := len(c.Snapshot().Orders); got != 1 {
		t.Fatalf("expected 1 order before failure, got %d", got)
	}

	// Second resolution: appointments grow, orders query fails.
	g.appointments[1] = append(g.appointments[1], Appointment{PublicID: "appt-2"})
	g.orderErr = errors.New("orders table unavailable")
	g.emit(&Session{UserID: 1})
	c.Wait()

	snap := c.Snapshot()
	if snap.State != StateAuthenticatedPatient {
		t.Fatalf("partial failure must not leave patient state, got %s", snap.State)
	}
	if !snap.FetchBanner {
		t.Error("expected banner after partial fetch failure")
	}
	if len(snap.Appointments) != 2 {
		t.Errorf("expected refreshed appointments, got %d", len(snap.Appointments))
	}
	if len(snap.Orders) != 1 {
		t.Errorf("expected prior orders cache untouched, got %d", len(snap.Orders))
	}
}

func TestBannerClearsAfterFullRefetchSucceeds(t *testing.T) {
	g := patientGateway(1, 1, 1)
	g.current = &Session{UserID: 1}

	c := NewController(g)
	defer c.Close()
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	g.orderErr = errors.New("transient")
	g.emit(&Session{UserID: 1})
	c.Wait()
	if !c.Snapshot().FetchBanner {
		t.Fatal("expected banner after failed fetch")
	}

	g.orderErr = nil
	g.emit(&Session{UserID: 1})
	c.Wait()
	if c.Snapshot().FetchBanner {
		t.Error("expected banner cleared after both queries succeed")
	}
}

func TestSignUpProfileUpsertFailureAbortsTransition(t *testing.T) {
	g := newMockGateway()
	g.upsertErr = NewGatewayError("profiles table unavailable")

	c := NewController(g)
	defer c.Close()
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	err := c.SignUp(context.Background(), "a@b.com", "x", SignUpMetadata{
		FullName: "Dr. New",
		Role:     RoleDoctor,
	})
	if err == nil {
		t.Fatal("expected error when profile upsert fails")
	}
	var gerr *GatewayError
	if !errors.As(err, &gerr) || gerr.Message != "profiles table unavailable" {
		t.Errorf("expected gateway message verbatim, got %v", err)
	}

	snap := c.Snapshot()
	if snap.State != StateAnonymous {
		t.Errorf("expected prior state unchanged, got %s", snap.State)
	}
	if snap.Role == RoleDoctor {
		t.Error("role must not be set when registration is incomplete")
	}
}

func TestSignInErrorSurfacesGatewayMessageVerbatim(t *testing.T) {
	g := newMockGateway()
	g.signInErr = NewGatewayError("Invalid email or password")

	c := NewController(g)
	defer c.Close()
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	err := c.SignIn(context.Background(), "a@b.com", "wrong")
	if err == nil || err.Error() != "Invalid email or password" {
		t.Errorf("expected verbatim gateway message, got %v", err)
	}
	if c.State() != StateAnonymous {
		t.Errorf("expected state unchanged after failed sign-in, got %s", c.State())
	}
}

func TestSignInErrorWithoutMessageUsesFallback(t *testing.T) {
	g := newMockGateway()
	g.signInErr = NewGatewayError("")

	c := NewController(g)
	defer c.Close()
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	err := c.SignIn(context.Background(), "a@b.com", "x")
	if err == nil || err.Error() != authFallbackMessage {
		t.Errorf("expected fixed fallback message, got %v", err)
	}
}

func TestMissingProfileLandsInAuthenticatedOther(t *testing.T) {
	g := newMockGateway()
	g.current = &Session{UserID: 9}

	c := NewController(g)
	defer c.Close()
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	snap := c.Snapshot()
	if snap.State != StateAuthenticatedOther {
		t.Errorf("expected authenticated other, got %s", snap.State)
	}
	if snap.Role != RoleUnresolved {
		t.Errorf("expected unresolved role, got %s", snap.Role)
	}
}

func TestNonPatientRoleSkipsScopedFetch(t *testing.T) {
	g := newMockGateway()
	g.profiles[3] = &Profile{UserID: 3, Role: RoleDoctor, FullName: "Dr. House"}
	g.current = &Session{UserID: 3}

	c := NewController(g)
	defer c.Close()
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if c.State() != StateAuthenticatedOther {
		t.Errorf("expected authenticated other for doctor, got %s", c.State())
	}
	if g.apptCalls != 0 || g.orderCalls != 0 {
		t.Errorf("expected no scoped queries for non-patient, got %d/%d",
			g.apptCalls, g.orderCalls)
	}
}

func TestSupersededResolutionNeverOverwritesNewerState(t *testing.T) {
	g := newMockGateway()
	g.profiles[1] = &Profile{UserID: 1, Role: RoleDoctor, FullName: "Slow One"}
	g.profiles[2] = &Profile{UserID: 2, Role: RolePatient, FullName: "Fast Two"}
	g.appointments[2] = []Appointment{{PublicID: "appt-u2"}}
	g.profileDelay[1] = 150 * time.Millisecond

	c := NewController(g)
	defer c.Close()
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	// Slow notification for user 1, then a fast one for user 2.
	g.emit(&Session{UserID: 1})
	time.Sleep(10 * time.Millisecond)
	g.emit(&Session{UserID: 2})
	c.Wait()

	snap := c.Snapshot()
	if snap.UserID != 2 {
		t.Fatalf("expected last notification to win, got user %d", snap.UserID)
	}
	if snap.Role != RolePatient || snap.State != StateAuthenticatedPatient {
		t.Errorf("expected user 2's resolution, got role=%s state=%s", snap.Role, snap.State)
	}
	if len(snap.Appointments) != 1 || snap.Appointments[0].PublicID != "appt-u2" {
		t.Errorf("expected user 2's appointments, got %+v", snap.Appointments)
	}
}

func TestNilNotificationClearsEverything(t *testing.T) {
	g := patientGateway(1, 2, 2)
	g.current = &Session{UserID: 1}

	c := NewController(g)
	defer c.Close()
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	g.emit(nil)
	c.Wait()

	snap := c.Snapshot()
	if snap.State != StateAnonymous {
		t.Errorf("expected anonymous after nil notification, got %s", snap.State)
	}
	if snap.UserID != 0 || len(snap.Appointments) != 0 || len(snap.Orders) != 0 {
		t.Error("expected all local caches cleared")
	}
}

func TestSignOutIsIdempotent(t *testing.T) {
	g := patientGateway(1, 1, 1)
	g.current = &Session{UserID: 1}

	c := NewController(g)
	defer c.Close()
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := c.SignOut(context.Background()); err != nil {
			t.Fatalf("SignOut %d failed: %v", i+1, err)
		}
		snap := c.Snapshot()
		if snap.State != StateAnonymous {
			t.Errorf("sign-out %d: expected anonymous, got %s", i+1, snap.State)
		}
		if len(snap.Appointments) != 0 || len(snap.Orders) != 0 {
			t.Errorf("sign-out %d: expected empty caches", i+1)
		}
	}
	if g.signOutCalls != 2 {
		t.Errorf("expected 2 gateway sign-out calls, got %d", g.signOutCalls)
	}
}

func TestSignOutClearsLocalStateDespiteGatewayFault(t *testing.T) {
	g := patientGateway(1, 1, 1)
	g.current = &Session{UserID: 1}
	g.signOutErr = errors.New("network down")

	c := NewController(g)
	defer c.Close()
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if err := c.SignOut(context.Background()); err != nil {
		t.Fatalf("SignOut must swallow gateway faults, got %v", err)
	}
	if c.State() != StateAnonymous {
		t.Errorf("expected anonymous despite gateway fault, got %s", c.State())
	}
}

func TestSecondConcurrentSignInIsRejected(t *testing.T) {
	g := newMockGateway()
	g.signInGate = make(chan struct{})
	g.signInStarted = make(chan struct{}, 1)
	g.profiles[1] = &Profile{UserID: 1, Role: RolePatient, FullName: "P"}

	c := NewController(g)
	defer c.Close()
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	done := make(chan error, 1)
	go func() {
		done <- c.SignIn(context.Background(), "p@example.com", "pw")
	}()

	// Wait until the first sign-in is suspended at the gateway call,
	// then the duplicate submission must be rejected, not queued.
	<-g.signInStarted
	if err := c.SignIn(context.Background(), "p@example.com", "pw"); !errors.Is(err, ErrAuthInFlight) {
		t.Fatalf("expected ErrAuthInFlight for duplicate submission, got %v", err)
	}

	close(g.signInGate)
	if err := <-done; err != nil {
		t.Fatalf("first sign-in failed: %v", err)
	}
	if c.State() != StateAuthenticatedPatient {
		t.Errorf("expected authenticated patient after sign-in, got %s", c.State())
	}
}

func TestStartTwiceFails(t *testing.T) {
	g := newMockGateway()
	c := NewController(g)
	defer c.Close()

	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("first Start failed: %v", err)
	}
	if err := c.Start(context.Background()); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("expected ErrAlreadyStarted, got %v", err)
	}
	if g.subCount != 1 {
		t.Errorf("expected exactly one subscription, got %d", g.subCount)
	}
}

func TestCloseReleasesSubscription(t *testing.T) {
	g := newMockGateway()
	c := NewController(g)
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	c.Close()
	if g.unsubCount != 1 {
		t.Errorf("expected subscription released on close, got %d", g.unsubCount)
	}
}

func TestParseRoleRejectsUnknownValues(t *testing.T) {
	cases := map[string]Role{
		"patient":    RolePatient,
		"doctor":     RoleDoctor,
		"admin":      RoleAdmin,
		"":           RoleUnresolved,
		"PATIENT":    RoleUnresolved,
		"superadmin": RoleUnresolved,
	}
	for raw, want := range cases {
		if got := ParseRole(raw); got != want {
			t.Errorf("ParseRole(%q) = %s, want %s", raw, got, want)
		}
	}
}
