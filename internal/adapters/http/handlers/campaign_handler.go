package handlers

import (
	"errors"
	"strings"
	"time"

	"donfundy/internal/adapters/http/middleware"
	"donfundy/internal/adapters/persistence/models"
	"donfundy/internal/core/services"
	"donfundy/internal/i18n"
	"donfundy/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CampaignHandler handles campaign endpoints
type CampaignHandler struct {
	campaignService *services.CampaignService
}

// NewCampaignHandler creates a new campaign handler
func NewCampaignHandler(campaignService *services.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService}
}

// CampaignRequest represents campaign create/update request body.
// Dates use the YYYY-MM-DD format.
type CampaignRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	GoalAmount  float64 `json:"goal_amount"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Status      string  `json:"status"`
}

func (r *CampaignRequest) toInput() (*services.CampaignInput, error) {
	input := &services.CampaignInput{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		GoalAmount:  r.GoalAmount,
		Status:      strings.ToUpper(strings.TrimSpace(r.Status)),
	}

	if r.StartDate != "" {
		start, err := time.Parse("2006-01-02", r.StartDate)
		if err != nil {
			return nil, err
		}
		input.StartDate = start
	}
	if r.EndDate != "" {
		end, err := time.Parse("2006-01-02", r.EndDate)
		if err != nil {
			return nil, err
		}
		input.EndDate = &end
	}

	return input, nil
}

func campaignError(c *fiber.Ctx, lang string, err error) error {
	switch {
	case errors.Is(err, services.ErrCampaignNotFound):
		return response.NotFound(c, i18n.T(lang, "error.campaign.not.found"))
	case errors.Is(err, services.ErrCampaignNameRequired):
		return response.BadRequest(c, i18n.T(lang, "error.campaign.name.required"))
	case errors.Is(err, services.ErrInvalidGoalAmount):
		return response.BadRequest(c, i18n.T(lang, "error.campaign.goal.invalid"))
	case errors.Is(err, services.ErrStartDateRequired):
		return response.BadRequest(c, i18n.T(lang, "error.campaign.start.required"))
	case errors.Is(err, services.ErrInvalidDateRange):
		return response.BadRequest(c, i18n.T(lang, "error.invalid.date.range"))
	case errors.Is(err, services.ErrInvalidCampaignStatus):
		return response.BadRequest(c, i18n.T(lang, "error.campaign.status.invalid"))
	case errors.Is(err, services.ErrUnauthorizedCampaignAccess):
		return response.Forbidden(c, i18n.T(lang, "error.unauthorized.campaign.access"))
	case errors.Is(err, services.ErrDonorProfileNotFound):
		return response.NotFound(c, i18n.T(lang, "error.donor.not.found.for.user"))
	default:
		return response.InternalServerError(c, i18n.T(lang, "error.internal"))
	}
}

// List returns all campaigns
// @Summary List campaigns
// @Description List campaigns, optionally filtered by status
// @Tags Campaigns
// @Produce json
// @Param status query string false "Campaign status filter"
// @Success 200 {object} response.Response
// @Router /campaigns [get]
func (h *CampaignHandler) List(c *fiber.Ctx) error {
	lang := middleware.Lang(c)

	status := strings.ToUpper(c.Query("status"))
	campaigns, err := h.campaignService.List(c.Context(), status)
	if err != nil {
		return campaignError(c, lang, err)
	}

	items := make([]*models.CampaignResponse, len(campaigns))
	for i, campaign := range campaigns {
		items[i] = campaign.ToResponse()
	}

	return response.Success(c, i18n.T(lang, "campaign.list.success"), items)
}

// Get returns a single campaign
// @Summary Get campaign
// @Description Get a campaign by ID
// @Tags Campaigns
// @Produce json
// @Param id path int true "Campaign ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /campaigns/{id} [get]
func (h *CampaignHandler) Get(c *fiber.Ctx) error {
	lang := middleware.Lang(c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, i18n.T(lang, "error.invalid.request"))
	}

	campaign, err := h.campaignService.GetByID(c.Context(), uint(id))
	if err != nil {
		return campaignError(c, lang, err)
	}

	return response.Success(c, i18n.T(lang, "campaign.get.success"), campaign.ToResponse())
}

// ListMine returns campaigns created by the current user
// @Summary List my campaigns
// @Description List campaigns created by the authenticated user
// @Tags Campaigns
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /campaigns/my-campaigns [get]
func (h *CampaignHandler) ListMine(c *fiber.Ctx) error {
	lang := middleware.Lang(c)

	campaigns, err := h.campaignService.ListMine(c.Context(), middleware.UserID(c))
	if err != nil {
		return campaignError(c, lang, err)
	}

	items := make([]*models.CampaignResponse, len(campaigns))
	for i, campaign := range campaigns {
		items[i] = campaign.ToResponse()
	}

	return response.Success(c, i18n.T(lang, "campaign.list.success"), items)
}

// Create creates a campaign
// @Summary Create campaign
// @Description Create a campaign owned by the authenticated user
// @Tags Campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CampaignRequest true "Campaign data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /campaigns [post]
func (h *CampaignHandler) Create(c *fiber.Ctx) error {
	lang := middleware.Lang(c)

	var req CampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, i18n.T(lang, "error.invalid.request"))
	}

	input, err := req.toInput()
	if err != nil {
		return response.BadRequest(c, i18n.T(lang, "error.invalid.request"))
	}

	campaign, err := h.campaignService.Create(c.Context(), middleware.UserID(c), input)
	if err != nil {
		return campaignError(c, lang, err)
	}

	return response.Created(c, i18n.T(lang, "campaign.created"), campaign.ToResponse())
}

// Update updates a campaign
// @Summary Update campaign
// @Description Update a campaign owned by the authenticated user
// @Tags Campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Param body body CampaignRequest true "Campaign data"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /campaigns/{id} [put]
func (h *CampaignHandler) Update(c *fiber.Ctx) error {
	lang := middleware.Lang(c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, i18n.T(lang, "error.invalid.request"))
	}

	var req CampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, i18n.T(lang, "error.invalid.request"))
	}

	input, err := req.toInput()
	if err != nil {
		return response.BadRequest(c, i18n.T(lang, "error.invalid.request"))
	}

	campaign, err := h.campaignService.Update(c.Context(), uint(id), middleware.UserID(c), middleware.IsAdmin(c), input)
	if err != nil {
		return campaignError(c, lang, err)
	}

	return response.Success(c, i18n.T(lang, "campaign.updated"), campaign.ToResponse())
}

// Delete removes a campaign
// @Summary Delete campaign
// @Description Delete a campaign owned by the authenticated user
// @Tags Campaigns
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /campaigns/{id} [delete]
func (h *CampaignHandler) Delete(c *fiber.Ctx) error {
	lang := middleware.Lang(c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, i18n.T(lang, "error.invalid.request"))
	}

	if err := h.campaignService.Delete(c.Context(), uint(id), middleware.UserID(c), middleware.IsAdmin(c)); err != nil {
		return campaignError(c, lang, err)
	}

	return response.Success(c, i18n.T(lang, "campaign.deleted"), nil)
}
