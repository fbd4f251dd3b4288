package handlers

import (
	"caremate-health/internal/catalog"
	"caremate-health/internal/pkg/pagination"
	"caremate-health/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler serves the static directory content
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// SearchDoctors lists doctors matching a query and specialty
// @Summary Search doctors
// @Description Search doctors by free-text query and specialty filter
// @Tags Catalog
// @Produce json
// @Param q query string false "Free-text query matched against name and specialty"
// @Param specialty query string false "Exact specialty, or All"
// @Success 200 {object} response.Response
// @Router /catalog/doctors [get]
func (h *CatalogHandler) SearchDoctors(c *fiber.Ctx) error {
	query := c.Query("q")
	specialty := c.Query("specialty", catalog.AllSpecialties)

	doctors := catalog.SearchDoctors(h.catalog.Doctors(), query, specialty)

	params := pagination.GetParams(c)
	total := int64(len(doctors))
	doctors = pageSlice(doctors, params)

	return response.Success(c, "Doctors retrieved successfully",
		pagination.NewResponse(doctors, params, total))
}

// GetDoctor returns a single doctor by id
// @Summary Get doctor
// @Tags Catalog
// @Produce json
// @Param id path string true "Doctor ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /catalog/doctors/{id} [get]
func (h *CatalogHandler) GetDoctor(c *fiber.Ctx) error {
	doctor, ok := h.catalog.DoctorByID(c.Params("id"))
	if !ok {
		return response.NotFound(c, "Doctor not found")
	}
	return response.Success(c, "Doctor retrieved successfully", fiber.Map{
		"doctor": doctor,
	})
}

// GetSpecialties lists the distinct specialties
// @Summary List specialties
// @Description Distinct specialties in first-seen order, with All prepended
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Response
// @Router /catalog/specialties [get]
func (h *CatalogHandler) GetSpecialties(c *fiber.Ctx) error {
	specialties := catalog.DistinctSpecialties(h.catalog.Doctors())
	return response.Success(c, "Specialties retrieved successfully", fiber.Map{
		"specialties": specialties,
	})
}

// GetClinics lists all clinics
// @Summary List clinics
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Response
// @Router /catalog/clinics [get]
func (h *CatalogHandler) GetClinics(c *fiber.Ctx) error {
	clinics := h.catalog.Clinics()
	return response.Success(c, "Clinics retrieved successfully", fiber.Map{
		"clinics": clinics,
		"count":   len(clinics),
	})
}

// GetClinic returns a clinic with its resolved doctors
// @Summary Get clinic
// @Tags Catalog
// @Produce json
// @Param id path string true "Clinic ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /catalog/clinics/{id} [get]
func (h *CatalogHandler) GetClinic(c *fiber.Ctx) error {
	clinic, ok := h.catalog.ClinicByID(c.Params("id"))
	if !ok {
		return response.NotFound(c, "Clinic not found")
	}
	return response.Success(c, "Clinic retrieved successfully", fiber.Map{
		"clinic":  clinic,
		"doctors": h.catalog.ResolveDoctors(clinic.DoctorIDs),
	})
}

// SearchMedicines lists medicines matching a query and category
// @Summary Search medicines
// @Tags Catalog
// @Produce json
// @Param q query string false "Free-text query"
// @Param category query string false "Exact category"
// @Success 200 {object} response.Response
// @Router /catalog/medicines [get]
func (h *CatalogHandler) SearchMedicines(c *fiber.Ctx) error {
	medicines := catalog.SearchMedicines(h.catalog.Medicines(), c.Query("q"), c.Query("category"))

	params := pagination.GetParams(c)
	total := int64(len(medicines))
	medicines = pageSlice(medicines, params)

	return response.Success(c, "Medicines retrieved successfully",
		pagination.NewResponse(medicines, params, total))
}

// SearchLabTests lists lab tests matching a query
// @Summary Search lab tests
// @Tags Catalog
// @Produce json
// @Param q query string false "Free-text query"
// @Success 200 {object} response.Response
// @Router /catalog/lab-tests [get]
func (h *CatalogHandler) SearchLabTests(c *fiber.Ctx) error {
	tests := catalog.SearchLabTests(h.catalog.LabTests(), c.Query("q"))
	return response.Success(c, "Lab tests retrieved successfully", fiber.Map{
		"lab_tests": tests,
		"count":     len(tests),
	})
}

// GetVideos lists the health video library
// @Summary List health videos
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Response
// @Router /catalog/videos [get]
func (h *CatalogHandler) GetVideos(c *fiber.Ctx) error {
	videos := h.catalog.Videos()
	return response.Success(c, "Videos retrieved successfully", fiber.Map{
		"videos": videos,
		"count":  len(videos),
	})
}

// pageSlice applies pagination offsets to an in-memory result set
func pageSlice[T any](items []T, params *pagination.Params) []T {
	if params.Offset >= len(items) {
		return []T{}
	}
	end := params.Offset + params.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[params.Offset:end]
}

// GetAbout returns the about page content
// @Summary About content
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Response
// @Router /catalog/about [get]
func (h *CatalogHandler) GetAbout(c *fiber.Ctx) error {
	return response.Success(c, "About retrieved successfully", fiber.Map{
		"about": h.catalog.About(),
	})
}
