package handlers

import (
	"caremate-health/internal/catalog"
	"caremate-health/internal/core/session"
	"caremate-health/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MobileHandler aggregates the data the mobile app needs on launch
// into a single response so the app avoids a request fan-out.
type MobileHandler struct {
	controller *session.Controller
	catalog    *catalog.Catalog
}

// NewMobileHandler creates a new mobile handler
func NewMobileHandler(controller *session.Controller, cat *catalog.Catalog) *MobileHandler {
	return &MobileHandler{controller: controller, catalog: cat}
}

// Bootstrap returns the aggregated app-launch payload
// @Summary Mobile bootstrap
// @Description Session snapshot plus catalog highlights in one call
// @Tags Mobile
// @Produce json
// @Success 200 {object} response.Response
// @Router /mobile/bootstrap [get]
func (h *MobileHandler) Bootstrap(c *fiber.Ctx) error {
	h.controller.Wait()
	snapshot := h.controller.Snapshot()

	doctors := h.catalog.Doctors()
	featured := doctors
	if len(featured) > 6 {
		featured = featured[:6]
	}

	return response.Success(c, "Bootstrap data retrieved successfully", fiber.Map{
		"session":          snapshot,
		"specialties":      catalog.DistinctSpecialties(doctors),
		"featured_doctors": featured,
		"clinics":          h.catalog.Clinics(),
		"videos":           h.catalog.Videos(),
		"about":            h.catalog.About(),
	})
}
