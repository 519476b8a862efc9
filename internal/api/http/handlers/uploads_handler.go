package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/RISHABH72git/SkillBridge/internal/auth"
	"github.com/RISHABH72git/SkillBridge/internal/ingest"
	"github.com/RISHABH72git/SkillBridge/internal/storage"
	apperrors "github.com/RISHABH72git/SkillBridge/pkg/util"
)

// UploadsHandler accepts resume files and kicks off ingestion.
type UploadsHandler struct {
	store    *storage.ResumeStore
	enqueuer ingest.Enqueuer
}

// NewUploadsHandler constructs handler.
func NewUploadsHandler(store *storage.ResumeStore, enqueuer ingest.Enqueuer) *UploadsHandler {
	return &UploadsHandler{store: store, enqueuer: enqueuer}
}

// UploadPDF POST /upload/pdf. The response returns as soon as the file is on
// disk and the ingestion task is queued; parsing happens out of band.
func (h *UploadsHandler) UploadPDF(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apperrors.NewValidationError("file required", nil)
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		return apperrors.NewValidationError("only .pdf files are accepted", map[string]any{
			"filename": fileHeader.Filename,
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	defer file.Close()

	if _, err := h.store.Save(principal.ID, file); err != nil {
		return apperrors.NewInternalError(err)
	}

	if err := h.enqueuer.EnqueueResumeIngest(c.UserContext(), principal.ID); err != nil {
		return apperrors.NewInternalError(err)
	}

	return c.Status(http.StatusAccepted).JSON(fiber.Map{
		"data": fiber.Map{
			"message": "resume uploaded; parsing in progress",
		},
	})
}
