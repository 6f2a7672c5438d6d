package handlers

import (
	"errors"

	"donfundy/internal/adapters/http/middleware"
	"donfundy/internal/adapters/persistence/models"
	"donfundy/internal/core/services"
	"donfundy/internal/i18n"
	"donfundy/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DonationHandler handles donation endpoints
type DonationHandler struct {
	donationService *services.DonationService
}

// NewDonationHandler creates a new donation handler
func NewDonationHandler(donationService *services.DonationService) *DonationHandler {
	return &DonationHandler{donationService: donationService}
}

func donationError(c *fiber.Ctx, lang string, err error) error {
	switch {
	case errors.Is(err, services.ErrDonationNotFound):
		return response.NotFound(c, i18n.T(lang, "error.donation.not.found"))
	case errors.Is(err, services.ErrInvalidDonationAmount):
		return response.BadRequest(c, i18n.T(lang, "error.donation.amount.invalid"))
	case errors.Is(err, services.ErrInvalidPaymentMethod):
		return response.BadRequest(c, i18n.T(lang, "error.payment.method.invalid"))
	case errors.Is(err, services.ErrCampaignNotFound):
		return response.NotFound(c, i18n.T(lang, "error.campaign.not.found"))
	case errors.Is(err, services.ErrCampaignAlreadyCompleted):
		return response.BadRequest(c, i18n.T(lang, "error.campaign.already.completed"))
	case errors.Is(err, services.ErrCampaignNotActive):
		return response.BadRequest(c, i18n.T(lang, "error.campaign.not.active"))
	case errors.Is(err, services.ErrDonorProfileNotFound):
		return response.NotFound(c, i18n.T(lang, "error.donor.not.found.for.user"))
	default:
		return response.InternalServerError(c, i18n.T(lang, "error.internal"))
	}
}

// List returns donations
// @Summary List donations
// @Description List donations, optionally filtered by campaign and donor
// @Tags Donations
// @Produce json
// @Param campaign_id query int false "Campaign ID filter"
// @Param donor_id query int false "Donor ID filter"
// @Success 200 {object} response.Response
// @Router /donations [get]
func (h *DonationHandler) List(c *fiber.Ctx) error {
	lang := middleware.Lang(c)

	campaignID := c.QueryInt("campaign_id")
	donorID := c.QueryInt("donor_id")
	if campaignID < 0 || donorID < 0 {
		return response.BadRequest(c, i18n.T(lang, "error.invalid.request"))
	}

	donations, err := h.donationService.List(c.Context(), uint(campaignID), uint(donorID))
	if err != nil {
		return donationError(c, lang, err)
	}

	items := make([]*models.DonationResponse, len(donations))
	for i, donation := range donations {
		items[i] = donation.ToResponse()
	}

	return response.Success(c, i18n.T(lang, "donation.list.success"), items)
}

// ListMine returns the current user's donations
// @Summary List my donations
// @Description List donations made by the authenticated user
// @Tags Donations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /donations/mine [get]
func (h *DonationHandler) ListMine(c *fiber.Ctx) error {
	lang := middleware.Lang(c)

	donations, err := h.donationService.ListMine(c.Context(), middleware.UserID(c))
	if err != nil {
		return donationError(c, lang, err)
	}

	items := make([]*models.DonationResponse, len(donations))
	for i, donation := range donations {
		items[i] = donation.ToResponse()
	}

	return response.Success(c, i18n.T(lang, "donation.list.success"), items)
}

// Get returns a single donation
// @Summary Get donation
// @Description Get a donation by ID
// @Tags Donations
// @Produce json
// @Param id path int true "Donation ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /donations/{id} [get]
func (h *DonationHandler) Get(c *fiber.Ctx) error {
	lang := middleware.Lang(c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, i18n.T(lang, "error.invalid.request"))
	}

	donation, err := h.donationService.GetByID(c.Context(), uint(id))
	if err != nil {
		return donationError(c, lang, err)
	}

	return response.Success(c, i18n.T(lang, "donation.get.success"), donation.ToResponse())
}

// Create records a donation
// @Summary Create donation
// @Description Donate to an active campaign as the authenticated user
// @Tags Donations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.DonationInput true "Donation data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /donations [post]
func (h *DonationHandler) Create(c *fiber.Ctx) error {
	lang := middleware.Lang(c)

	var input services.DonationInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, i18n.T(lang, "error.invalid.request"))
	}

	donation, err := h.donationService.Create(c.Context(), middleware.UserID(c), &input)
	if err != nil {
		return donationError(c, lang, err)
	}

	return response.Created(c, i18n.T(lang, "donation.created"), donation.ToResponse())
}

// Delete removes a donation (admin only)
// @Summary Delete donation
// @Description Delete a donation and subtract its amount from the campaign
// @Tags Donations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Donation ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /donations/{id} [delete]
func (h *DonationHandler) Delete(c *fiber.Ctx) error {
	lang := middleware.Lang(c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, i18n.T(lang, "error.invalid.request"))
	}

	if err := h.donationService.Delete(c.Context(), uint(id)); err != nil {
		return donationError(c, lang, err)
	}

	return response.Success(c, i18n.T(lang, "donation.deleted"), nil)
}
