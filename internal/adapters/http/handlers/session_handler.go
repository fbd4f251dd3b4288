package handlers

import (
	"errors"
	"strings"

	"caremate-health/internal/core/session"
	"caremate-health/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SessionHandler exposes the session controller over HTTP. Every
// endpoint responds with the controller's settled snapshot so clients
// never observe a half-applied transition.
type SessionHandler struct {
	controller *session.Controller
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(controller *session.Controller) *SessionHandler {
	return &SessionHandler{controller: controller}
}

// SignInRequest represents sign-in request body
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpRequest represents sign-up request body
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// Snapshot returns the current session state
// @Summary Current session snapshot
// @Description Get the session controller's current state, role and cached records
// @Tags Session
// @Produce json
// @Success 200 {object} response.Response
// @Router /session [get]
func (h *SessionHandler) Snapshot(c *fiber.Ctx) error {
	h.controller.Wait()
	return response.Success(c, "Session snapshot", h.controller.Snapshot())
}

// SignIn authenticates and resolves the session role
// @Summary Sign in
// @Description Authenticate, resolve the account role and cache scoped records
// @Tags Session
// @Accept json
// @Produce json
// @Param body body SignInRequest true "Credentials"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /session/sign-in [post]
func (h *SessionHandler) SignIn(c *fiber.Ctx) error {
	var req SignInRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return response.BadRequest(c, "Email and password are required")
	}

	if err := h.controller.SignIn(c.Context(), strings.TrimSpace(strings.ToLower(req.Email)), req.Password); err != nil {
		if errors.Is(err, session.ErrAuthInFlight) {
			return response.Conflict(c, "Another sign-in is already in progress")
		}
		return response.Unauthorized(c, err.Error())
	}

	h.controller.Wait()
	return response.Success(c, "Signed in", h.controller.Snapshot())
}

// SignUp registers a new account and resolves the session role
// @Summary Sign up
// @Description Register a new account, write its profile and resolve the role
// @Tags Session
// @Accept json
// @Produce json
// @Param body body SignUpRequest true "Registration data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /session/sign-up [post]
func (h *SessionHandler) SignUp(c *fiber.Ctx) error {
	var req SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return response.BadRequest(c, "Email and password are required")
	}
	if req.FullName == "" {
		return response.BadRequest(c, "Full name is required")
	}
	role := session.ParseRole(strings.ToLower(strings.TrimSpace(req.Role)))
	if role == session.RoleUnresolved {
		return response.BadRequest(c, "Role must be patient, doctor or admin")
	}

	meta := session.SignUpMetadata{
		FullName: strings.TrimSpace(req.FullName),
		Role:     role,
	}
	if err := h.controller.SignUp(c.Context(), strings.TrimSpace(strings.ToLower(req.Email)), req.Password, meta); err != nil {
		if errors.Is(err, session.ErrAuthInFlight) {
			return response.Conflict(c, "Another sign-in is already in progress")
		}
		return response.BadRequest(c, err.Error())
	}

	h.controller.Wait()
	return response.Created(c, "Signed up", h.controller.Snapshot())
}

// SignOut ends the session
// @Summary Sign out
// @Description Sign out; local state is cleared even when revocation fails upstream
// @Tags Session
// @Produce json
// @Success 200 {object} response.Response
// @Router /session/sign-out [post]
func (h *SessionHandler) SignOut(c *fiber.Ctx) error {
	if err := h.controller.SignOut(c.Context()); err != nil {
		return response.InternalServerError(c, "Failed to sign out")
	}
	h.controller.Wait()
	return response.Success(c, "Signed out", h.controller.Snapshot())
}

// DismissBanner clears the degraded-fetch banner
// @Summary Dismiss fetch banner
// @Description Clear the banner raised when a scoped fetch partially failed
// @Tags Session
// @Produce json
// @Success 200 {object} response.Response
// @Router /session/banner/dismiss [post]
func (h *SessionHandler) DismissBanner(c *fiber.Ctx) error {
	h.controller.DismissBanner()
	return response.Success(c, "Banner dismissed", h.controller.Snapshot())
}
