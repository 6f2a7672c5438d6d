package handlers

import (
	"bytes"
	"fmt"
	"time"

	"donfundy/internal/adapters/http/middleware"
	"donfundy/internal/core/services"
	"donfundy/internal/i18n"
	"donfundy/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler handles report endpoints
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Donations streams the donation export as a CSV download
// @Summary Download donation report
// @Description Export all donations as a CSV file
// @Tags Reports
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 403 {object} response.Response
// @Router /reports/donations [get]
func (h *ReportHandler) Donations(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.reportService.WriteDonationsCSV(c.Context(), &buf); err != nil {
		return response.InternalServerError(c, i18n.T(middleware.Lang(c), "error.report.failed"))
	}

	filename := fmt.Sprintf("donations_%s.csv", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)

	return c.Send(buf.Bytes())
}

// Campaigns streams the campaigns summary as a CSV download
// @Summary Download campaigns summary
// @Description Export all campaigns with goal, raised amount and progress as a CSV file
// @Tags Reports
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 403 {object} response.Response
// @Router /reports/campaigns [get]
func (h *ReportHandler) Campaigns(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.reportService.WriteCampaignsSummaryCSV(c.Context(), &buf); err != nil {
		return response.InternalServerError(c, i18n.T(middleware.Lang(c), "error.report.failed"))
	}

	filename := fmt.Sprintf("campaigns_%s.csv", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)

	return c.Send(buf.Bytes())
}

// Generate writes the full report to disk and returns its location
// @Summary Generate report files
// @Description Write the campaigns summary and per-campaign donation files under the report directory
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /reports/generate [post]
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	lang := middleware.Lang(c)

	path, err := h.reportService.Generate(c.Context())
	if err != nil {
		return response.InternalServerError(c, i18n.T(lang, "error.report.failed"))
	}

	return response.Success(c, i18n.T(lang, "report.generated"), fiber.Map{"path": path})
}
