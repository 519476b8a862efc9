package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/RISHABH72git/SkillBridge/internal/api/http/handlers"
	"github.com/RISHABH72git/SkillBridge/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Jobs           *handlers.JobsHandler
	Uploads        *handlers.UploadsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/login", cfg.Auth.Login)
	app.Post("/register/recruiter", cfg.Auth.RegisterRecruiter)
	app.Post("/register/candidate", cfg.Auth.RegisterCandidate)

	protected := app.Group("", cfg.AuthMiddleware.Handle)
	protected.Post("/jobs", auth.RequireRecruiter(), cfg.Jobs.CreateJob)
	protected.Get("/jobs", cfg.Jobs.ListJobs)
	protected.Get("/jobs/:id", cfg.Jobs.GetJob)
	protected.Post("/jobs/:id/apply", auth.RequireCandidate(), cfg.Jobs.Apply)
	protected.Get("/applied/jobs", auth.RequireCandidate(), cfg.Jobs.ListAppliedJobs)
	protected.Post("/upload/pdf", cfg.Uploads.UploadPDF)
}
