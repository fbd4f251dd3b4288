package handlers

import (
	"caremate-health/internal/core/services"
	"caremate-health/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AdvisoryHandler handles AI health Q&A. Advisory is informational
// only, so a failed upstream call still answers with 200.
type AdvisoryHandler struct {
	advisoryService *services.AdvisoryService
}

// NewAdvisoryHandler creates a new advisory handler
func NewAdvisoryHandler(advisoryService *services.AdvisoryService) *AdvisoryHandler {
	return &AdvisoryHandler{advisoryService: advisoryService}
}

// AskRequest represents an advisory question
type AskRequest struct {
	Query string `json:"query"`
}

// Ask answers a health question
// @Summary Ask health question
// @Description Answer a general health question; degrades to a safe notice on upstream failure
// @Tags Advisory
// @Accept json
// @Produce json
// @Param body body AskRequest true "Question"
// @Success 200 {object} response.Response
// @Router /advisory/ask [post]
func (h *AdvisoryHandler) Ask(c *fiber.Ctx) error {
	var req AskRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	answer := h.advisoryService.AskHealthQuestion(c.Context(), req.Query)

	return response.Success(c, "Advisory answer", fiber.Map{
		"answer": answer,
	})
}
