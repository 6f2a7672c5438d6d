package handlers

import (
	"path/filepath"
	"strings"

	"donfundy/internal/adapters/http/middleware"
	"donfundy/internal/core/services"
	"donfundy/internal/i18n"
	"donfundy/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// BulkDonationHandler handles CSV donation imports
type BulkDonationHandler struct {
	bulkService *services.BulkDonationService
}

// NewBulkDonationHandler creates a new bulk donation handler
func NewBulkDonationHandler(bulkService *services.BulkDonationService) *BulkDonationHandler {
	return &BulkDonationHandler{bulkService: bulkService}
}

// Upload imports donations from an uploaded CSV file
// @Summary Bulk upload donations
// @Description Import donations from a CSV file. Returns 201 when every
// row imported, 206 when some rows failed, 400 when none did.
// @Tags Donations
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "CSV file"
// @Success 201 {object} response.Response
// @Success 206 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /bulk-donations/upload [post]
func (h *BulkDonationHandler) Upload(c *fiber.Ctx) error {
	lang := middleware.Lang(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, i18n.T(lang, "error.file.required"))
	}

	// Reject anything that is not a .csv before reading it
	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".csv") {
		return response.BadRequest(c, i18n.T(lang, "error.file.not.csv"))
	}
	if fileHeader.Size == 0 {
		return response.BadRequest(c, i18n.T(lang, "error.file.empty"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.InternalServerError(c, i18n.T(lang, "error.upload.failed"))
	}
	defer file.Close()

	result, err := h.bulkService.ProcessCSV(c.Context(), file)
	if err != nil {
		return response.BadRequest(c, i18n.T(lang, "error.upload.failed"))
	}

	message := i18n.T(lang, "bulk.upload.processed")
	switch {
	case result.FailureCount == 0 && result.SuccessCount > 0:
		return response.Created(c, message, result)
	case result.FailureCount > 0 && result.SuccessCount > 0:
		return response.PartialContent(c, message, result)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(response.Response{
			Success: false,
			Message: message,
			Data:    result,
			Error:   i18n.T(lang, "error.upload.failed"),
		})
	}
}
