package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/RISHABH72git/SkillBridge/internal/api/dto"
	"github.com/RISHABH72git/SkillBridge/internal/auth"
	"github.com/RISHABH72git/SkillBridge/internal/domain"
	"github.com/RISHABH72git/SkillBridge/internal/service"
	apperrors "github.com/RISHABH72git/SkillBridge/pkg/util"
)

// JobsHandler manages job and application endpoints.
type JobsHandler struct {
	service *service.JobService
}

// NewJobsHandler constructs handler.
func NewJobsHandler(jobService *service.JobService) *JobsHandler {
	return &JobsHandler{service: jobService}
}

// CreateJob POST /jobs.
func (h *JobsHandler) CreateJob(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Title == "" || req.Description == "" || req.CompanyName == "" {
		return apperrors.NewValidationError("title, description, company_name required", nil)
	}

	job, err := h.service.CreateJob(c.UserContext(), principal, service.JobCreateInput{
		Title:       req.Title,
		Description: req.Description,
		CompanyName: req.CompanyName,
		Pincode:     req.Pincode,
		City:        req.City,
		Country:     req.Country,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": jobSummary(job)})
}

// ListJobs GET /jobs.
func (h *JobsHandler) ListJobs(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	jobs, err := h.service.ListJobs(c.UserContext(), principal)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": jobSummaries(jobs)})
}

// GetJob GET /jobs/:id.
func (h *JobsHandler) GetJob(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	detail, err := h.service.GetJob(c.UserContext(), principal, c.Params("id"))
	if err != nil {
		return err
	}

	resp := dto.JobDetail{JobSummary: jobSummary(detail.Job)}
	for _, applicant := range detail.Applicants {
		resp.Applicants = append(resp.Applicants, dto.UserSummary{
			ID:       applicant.ID,
			Name:     applicant.Name,
			Email:    applicant.Email,
			UserType: string(applicant.Role),
		})
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Apply POST /jobs/:id/apply.
func (h *JobsHandler) Apply(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	app, err := h.service.Apply(c.UserContext(), principal, c.Params("id"))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.ApplicationResponse{
			ID:        app.ID,
			JobID:     app.JobID,
			AppliedAt: app.AppliedAt,
		},
	})
}

// ListAppliedJobs GET /applied/jobs.
func (h *JobsHandler) ListAppliedJobs(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	jobs, err := h.service.ListAppliedJobs(c.UserContext(), principal)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": jobSummaries(jobs)})
}

func jobSummary(job *domain.Job) dto.JobSummary {
	return dto.JobSummary{
		ID:          job.ID,
		Title:       job.Title,
		Description: job.Description,
		IsActive:    job.IsActive,
		CompanyName: job.CompanyName,
		Pincode:     job.Pincode,
		City:        job.City,
		Country:     job.Country,
		RecruiterID: job.RecruiterID,
		CreatedAt:   job.CreatedAt,
	}
}

func jobSummaries(jobs []domain.Job) []dto.JobSummary {
	items := make([]dto.JobSummary, 0, len(jobs))
	for i := range jobs {
		items = append(items, jobSummary(&jobs[i]))
	}
	return items
}
