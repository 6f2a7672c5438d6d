package handlers

import (
	"errors"

	"donfundy/internal/adapters/http/middleware"
	"donfundy/internal/adapters/persistence/models"
	"donfundy/internal/core/services"
	"donfundy/internal/i18n"
	"donfundy/internal/pkg/pagination"
	"donfundy/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DonorHandler handles donor endpoints
type DonorHandler struct {
	donorService *services.DonorService
}

// NewDonorHandler creates a new donor handler
func NewDonorHandler(donorService *services.DonorService) *DonorHandler {
	return &DonorHandler{donorService: donorService}
}

func donorError(c *fiber.Ctx, lang string, err error) error {
	switch {
	case errors.Is(err, services.ErrDonorNotFound):
		return response.NotFound(c, i18n.T(lang, "error.donor.not.found"))
	case errors.Is(err, services.ErrDonorProfileNotFound):
		return response.NotFound(c, i18n.T(lang, "error.donor.not.found.for.user"))
	case errors.Is(err, services.ErrDonorNameRequired):
		return response.BadRequest(c, i18n.T(lang, "error.donor.name.required"))
	case errors.Is(err, services.ErrDonorEmailRequired):
		return response.BadRequest(c, i18n.T(lang, "error.donor.email.required"))
	case errors.Is(err, services.ErrDonorEmailExists):
		return response.Conflict(c, i18n.T(lang, "error.donor.email.exists"))
	default:
		return response.InternalServerError(c, i18n.T(lang, "error.internal"))
	}
}

// List returns a page of donors (admin only)
// @Summary List donors
// @Description List donor profiles with pagination
// @Tags Donors
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /donors [get]
func (h *DonorHandler) List(c *fiber.Ctx) error {
	lang := middleware.Lang(c)

	params := pagination.GetParams(c)
	donors, total, err := h.donorService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return donorError(c, lang, err)
	}

	items := make([]*models.DonorResponse, len(donors))
	for i, donor := range donors {
		items[i] = donor.ToResponse()
	}

	return response.Success(c, i18n.T(lang, "donor.list.success"), pagination.NewResponse(items, params, total))
}

// Get returns a single donor
// @Summary Get donor
// @Description Get a donor profile by ID
// @Tags Donors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Donor ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /donors/{id} [get]
func (h *DonorHandler) Get(c *fiber.Ctx) error {
	lang := middleware.Lang(c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, i18n.T(lang, "error.invalid.request"))
	}

	donor, err := h.donorService.GetByID(c.Context(), uint(id))
	if err != nil {
		return donorError(c, lang, err)
	}

	return response.Success(c, i18n.T(lang, "donor.get.success"), donor.ToResponse())
}

// GetByUser returns the donor profile linked to a user account
// @Summary Get donor by user
// @Description Get the donor profile linked to a user account
// @Tags Donors
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /donors/user/{userId} [get]
func (h *DonorHandler) GetByUser(c *fiber.Ctx) error {
	lang := middleware.Lang(c)

	userID, err := c.ParamsInt("userId")
	if err != nil || userID <= 0 {
		return response.BadRequest(c, i18n.T(lang, "error.invalid.request"))
	}

	donor, err := h.donorService.GetByUserID(c.Context(), uint(userID))
	if err != nil {
		return donorError(c, lang, err)
	}

	return response.Success(c, i18n.T(lang, "donor.get.success"), donor.ToResponse())
}

// Create creates a donor profile (admin only)
// @Summary Create donor
// @Description Create a standalone donor profile
// @Tags Donors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.DonorInput true "Donor data"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /donors [post]
func (h *DonorHandler) Create(c *fiber.Ctx) error {
	lang := middleware.Lang(c)

	var input services.DonorInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, i18n.T(lang, "error.invalid.request"))
	}

	donor, err := h.donorService.Create(c.Context(), &input)
	if err != nil {
		return donorError(c, lang, err)
	}

	return response.Created(c, i18n.T(lang, "donor.created"), donor.ToResponse())
}

// Me returns the donor profile of the current user
// @Summary Get my donor profile
// @Description Get the donor profile linked to the authenticated account
// @Tags Donors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /donors/me [get]
func (h *DonorHandler) Me(c *fiber.Ctx) error {
	lang := middleware.Lang(c)

	donor, err := h.donorService.GetByUserID(c.Context(), middleware.UserID(c))
	if err != nil {
		return donorError(c, lang, err)
	}

	return response.Success(c, i18n.T(lang, "donor.get.success"), donor.ToResponse())
}

// Update updates a donor profile (admin only)
// @Summary Update donor
// @Description Update a donor profile
// @Tags Donors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Donor ID"
// @Param body body services.DonorInput true "Donor data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /donors/{id} [put]
func (h *DonorHandler) Update(c *fiber.Ctx) error {
	lang := middleware.Lang(c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, i18n.T(lang, "error.invalid.request"))
	}

	var input services.DonorInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, i18n.T(lang, "error.invalid.request"))
	}

	donor, err := h.donorService.Update(c.Context(), uint(id), &input)
	if err != nil {
		return donorError(c, lang, err)
	}

	return response.Success(c, i18n.T(lang, "donor.updated"), donor.ToResponse())
}

// Delete removes a donor profile (admin only)
// @Summary Delete donor
// @Description Delete a donor profile
// @Tags Donors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Donor ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /donors/{id} [delete]
func (h *DonorHandler) Delete(c *fiber.Ctx) error {
	lang := middleware.Lang(c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, i18n.T(lang, "error.invalid.request"))
	}

	if err := h.donorService.Delete(c.Context(), uint(id)); err != nil {
		return donorError(c, lang, err)
	}

	return response.Success(c, i18n.T(lang, "donor.deleted"), nil)
}
