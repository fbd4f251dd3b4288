package session

import (
	"context"
	"errors"
	"log"
	"sync"
)

var (
	ErrAlreadyStarted = errors.New("session controller already started")
	ErrAuthInFlight   = errors.New("authentication already in progress")
)

// authFallbackMessage is shown when the gateway reports a fault
// without a message of its own.
const authFallbackMessage = "Something went wrong. Please try again."

// Snapshot is a copy of the controller's current view, safe to render
// from without holding any lock.
type Snapshot struct {
	State        State         `json:"state"`
	UserID       uint          `json:"user_id,omitempty"`
	Email        string        `json:"email,omitempty"`
	Role         Role          `json:"role"`
	FullName     string        `json:"full_name,omitempty"`
	Appointments []Appointment `json:"appointments"`
	Orders       []Order       `json:"orders"`
	FetchBanner  bool          `json:"fetch_banner"`
}

// Controller owns the session state machine. All external calls are
// suspension points; a generation counter discards results of
// superseded resolutions so a stale fetch can never overwrite newer
// state.
type Controller struct {
	gateway Gateway

	mu           sync.Mutex
	state        State
	current      *Session
	role         Role
	fullName     string
	appointments []Appointment
	orders       []Order
	banner       bool
	gen          uint64
	authBusy     bool
	sub          Subscription
	started      bool

	wg sync.WaitGroup
}

// NewController creates a controller in the Initializing state
func NewController(gateway Gateway) *Controller {
	return &Controller{
		gateway: gateway,
		state:   StateInitializing,
		role:    RoleUnresolved,
	}
}

// Start acquires the single session-change subscription and performs
// the initial session check. It blocks until the first resolution
// completes, so callers can render tab content as soon as it returns.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return ErrAlreadyStarted
	}
	c.started = true
	c.mu.Unlock()

	sub := c.gateway.SubscribeToSessionChanges(c.onSessionChange)
	c.mu.Lock()
	c.sub = sub
	c.mu.Unlock()

	s, err := c.gateway.GetCurrentSession(ctx)
	if err != nil {
		log.Printf("⚠️ Session check failed, starting anonymous: %v", err)
	}
	if err != nil || s == nil {
		c.resetToAnonymous()
		return nil
	}

	gen := c.enterResolving(s)
	c.resolveRole(ctx, gen, s)
	return nil
}

// Close releases the subscription and waits for in-flight background
// resolutions to finish.
func (c *Controller) Close() {
	c.mu.Lock()
	sub := c.sub
	c.sub = nil
	c.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
	}
	c.wg.Wait()
}

// Wait blocks until background resolutions triggered by session-change
// notifications have completed.
func (c *Controller) Wait() {
	c.wg.Wait()
}

// onSessionChange handles a gateway notification: login elsewhere,
// expiry, or explicit sign-out. A nil session is the only path that
// clears the local caches.
func (c *Controller) onSessionChange(s *Session) {
	if s == nil {
		c.resetToAnonymous()
		return
	}

	gen := c.enterResolving(s)
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.resolveRole(context.Background(), gen, s)
	}()
}

// SignIn authenticates with the gateway. The call is synchronous from
// the caller's perspective; any gateway fault aborts the transition,
// leaves the prior state unchanged, and is returned for a blocking
// alert.
func (c *Controller) SignIn(ctx context.Context, email, password string) error {
	if !c.beginAuth() {
		return ErrAuthInFlight
	}
	defer c.endAuth()

	s, err := c.gateway.SignIn(ctx, email, password)
	if err != nil {
		return authError(err)
	}

	gen := c.enterResolving(s)
	c.resolveRole(ctx, gen, s)
	return nil
}

// SignUp registers with the gateway, then writes the profile row with
// the chosen role. Registration is not complete until the profile row
// exists: an upsert failure aborts the transition with the prior state
// unchanged.
func (c *Controller) SignUp(ctx context.Context, email, password string, meta SignUpMetadata) error {
	if !c.beginAuth() {
		return ErrAuthInFlight
	}
	defer c.endAuth()

	s, err := c.gateway.SignUp(ctx, email, password, meta)
	if err != nil {
		return authError(err)
	}

	profile := Profile{
		UserID:   s.UserID,
		Role:     meta.Role,
		FullName: meta.FullName,
	}
	if err := c.gateway.UpsertProfile(ctx, profile); err != nil {
		return authError(err)
	}

	gen := c.enterResolving(s)
	c.resolveRole(ctx, gen, s)
	return nil
}

// SignOut calls the gateway, then clears local state unconditionally.
// A network fault on sign-out must never leave local state
// inconsistent, so the gateway error is logged and swallowed.
func (c *Controller) SignOut(ctx context.Context) error {
	if err := c.gateway.SignOut(ctx); err != nil {
		log.Printf("⚠️ Gateway sign-out failed, clearing local state anyway: %v", err)
	}
	c.resetToAnonymous()
	return nil
}

// DismissBanner dismisses the scoped-fetch error banner
func (c *Controller) DismissBanner() {
	c.mu.Lock()
	c.banner = false
	c.mu.Unlock()
}

// Snapshot returns a copy of the current view
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		State:        c.state,
		Role:         c.role,
		FullName:     c.fullName,
		Appointments: append([]Appointment(nil), c.appointments...),
		Orders:       append([]Order(nil), c.orders...),
		FetchBanner:  c.banner,
	}
	if c.current != nil {
		snap.UserID = c.current.UserID
		snap.Email = c.current.Email
	}
	return snap
}

// State returns the current state tag
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// enterResolving supersedes any in-flight resolution and moves to
// ResolvingRole for the given session. Caches are kept until replaced
// or cleared by the anonymous path.
func (c *Controller) enterResolving(s *Session) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.state = StateResolvingRole
	c.current = s
	c.role = RoleUnresolved
	c.fullName = ""
	return c.gen
}

// resetToAnonymous clears user, role and both caches unconditionally
func (c *Controller) resetToAnonymous() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.state = StateAnonymous
	c.current = nil
	c.role = RoleUnresolved
	c.fullName = ""
	c.appointments = nil
	c.orders = nil
	c.banner = false
}

// resolveRole looks up the profile for the session's user and
// transitions accordingly. A missing profile or lookup failure lands
// in AuthenticatedOther with the role unresolved, never an error.
func (c *Controller) resolveRole(ctx context.Context, gen uint64, s *Session) {
	profile, err := c.gateway.GetProfile(ctx, s.UserID)
	if err != nil {
		log.Printf("⚠️ Profile lookup failed for user %d: %v", s.UserID, err)
	}
	if err != nil || profile == nil {
		c.applyRole(gen, RoleUnresolved, "", StateAuthenticatedOther)
		return
	}

	role := ParseRole(string(profile.Role))
	if role != RolePatient {
		c.applyRole(gen, role, profile.FullName, StateAuthenticatedOther)
		return
	}

	if !c.applyRole(gen, RolePatient, profile.FullName, StateAuthenticatedPatient) {
		return
	}
	c.fetchPatientRecords(ctx, gen, s.UserID)
}

// applyRole writes role and state if the resolution has not been
// superseded. Returns false when stale.
func (c *Controller) applyRole(gen uint64, role Role, fullName string, state State) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return false
	}
	c.role = role
	c.fullName = fullName
	c.state = state
	return true
}

// fetchPatientRecords runs the two scoped queries concurrently and
// applies the results in a single critical section once both have
// resolved, so new appointments are never visible next to stale
// orders. Partial failure raises the banner and leaves the failed
// side's cache untouched.
func (c *Controller) fetchPatientRecords(ctx context.Context, gen uint64, userID uint) {
	var (
		appts    []Appointment
		orders   []Order
		apptErr  error
		orderErr error
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		appts, apptErr = c.gateway.QueryAppointments(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		orders, orderErr = c.gateway.QueryOrders(ctx, userID)
	}()
	wg.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	if apptErr == nil {
		c.appointments = appts
	} else {
		log.Printf("⚠️ Appointment fetch failed for user %d: %v", userID, apptErr)
	}
	if orderErr == nil {
		c.orders = orders
	} else {
		log.Printf("⚠️ Order fetch failed for user %d: %v", userID, orderErr)
	}
	c.banner = apptErr != nil || orderErr != nil
}

func (c *Controller) beginAuth() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.authBusy {
		return false
	}
	c.authBusy = true
	return true
}

func (c *Controller) endAuth() {
	c.mu.Lock()
	c.authBusy = false
	c.mu.Unlock()
}

// authError normalizes a gateway fault for a blocking alert: the
// gateway's message verbatim, or a fixed fallback when it has none.
func authError(err error) error {
	var gerr *GatewayError
	if errors.As(err, &gerr) {
		if gerr.Message != "" {
			return gerr
		}
		return NewGatewayError(authFallbackMessage)
	}
	if err != nil && err.Error() != "" {
		return NewGatewayError(err.Error())
	}
	return NewGatewayError(authFallbackMessage)
}
