package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/RISHABH72git/SkillBridge/internal/auth"
	"github.com/RISHABH72git/SkillBridge/internal/domain"
	"github.com/RISHABH72git/SkillBridge/internal/events"
	"github.com/RISHABH72git/SkillBridge/internal/repository"
	apperrors "github.com/RISHABH72git/SkillBridge/pkg/util"
)

// JobService coordinates role-gated job and application workflows.
type JobService struct {
	jobs         repository.JobRepository
	applications repository.ApplicationRepository
	dispatcher   events.Dispatcher
}

// JobDependencies bundles repositories for the job service.
type JobDependencies struct {
	JobRepo         repository.JobRepository
	ApplicationRepo repository.ApplicationRepository
	Dispatcher      events.Dispatcher
}

// JobCreateInput describes a job posting payload.
type JobCreateInput struct {
	Title       string
	Description string
	CompanyName string
	Pincode     int
	City        string
	Country     string
}

// JobDetail pairs a job with its applicants when the caller may see them.
type JobDetail struct {
	Job        *domain.Job
	Applicants []domain.User
}

// NewJobService constructs the service.
func NewJobService(deps JobDependencies) *JobService {
	return &JobService{
		jobs:         deps.JobRepo,
		applications: deps.ApplicationRepo,
		dispatcher:   deps.Dispatcher,
	}
}

// CreateJob creates a posting owned by the calling recruiter.
func (s *JobService) CreateJob(ctx context.Context, caller *auth.Principal, input JobCreateInput) (*domain.Job, error) {
	if caller.Role != domain.RoleRecruiter {
		return nil, apperrors.NewForbidden("only recruiters can add jobs")
	}

	job := &domain.Job{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		IsActive:    true,
		CompanyName: strings.TrimSpace(input.CompanyName),
		Pincode:     input.Pincode,
		City:        input.City,
		Country:     input.Country,
		RecruiterID: caller.ID,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		Type:   events.EventJobCreated,
		UserID: caller.ID,
		Payload: events.JobCreatedPayload{
			JobID:       job.ID,
			Title:       job.Title,
			CompanyName: job.CompanyName,
		},
	})
	return job, nil
}

// ListJobs scopes the listing by role: recruiters manage their own postings,
// everyone else browses the active market.
func (s *JobService) ListJobs(ctx context.Context, caller *auth.Principal) ([]domain.Job, error) {
	var (
		jobs []domain.Job
		err  error
	)
	if caller.Role == domain.RoleRecruiter {
		jobs, err = s.jobs.ListByRecruiter(ctx, caller.ID)
	} else {
		jobs, err = s.jobs.ListActive(ctx)
	}
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return jobs, nil
}

// GetJob returns one job for the caller. A recruiter only sees a job they
// own, and gets its applicant list; a candidate sees any job without
// applicants.
func (s *JobService) GetJob(ctx context.Context, caller *auth.Principal, jobID string) (*JobDetail, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("job", map[string]any{"job_id": jobID})
		}
		return nil, apperrors.MapError(err)
	}

	detail := &JobDetail{Job: job}
	if caller.Role == domain.RoleRecruiter {
		if job.RecruiterID != caller.ID {
			return nil, apperrors.NewNotFound("job", map[string]any{"job_id": jobID})
		}
		applicants, err := s.applications.ListApplicantsForJob(ctx, job.ID)
		if err != nil {
			return nil, apperrors.MapError(err)
		}
		detail.Applicants = applicants
	}
	return detail, nil
}

// Apply records a candidate's application to a job.
//
// The existence check is advisory; the (candidate_id, job_id) constraint
// settles concurrent duplicates and the repository maps the violation.
func (s *JobService) Apply(ctx context.Context, caller *auth.Principal, jobID string) (*domain.Application, error) {
	if caller.Role != domain.RoleCandidate {
		return nil, apperrors.NewForbidden("only candidates can apply to jobs")
	}

	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("job", map[string]any{"job_id": jobID})
		}
		return nil, apperrors.MapError(err)
	}

	exists, err := s.applications.ExistsForCandidateAndJob(ctx, caller.ID, jobID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if exists {
		return nil, apperrors.NewAlreadyApplied(jobID)
	}

	app := &domain.Application{
		ID:          uuid.NewString(),
		CandidateID: caller.ID,
		JobID:       jobID,
	}
	if err := s.applications.Create(ctx, app); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		Type:   events.EventApplicationSubmitted,
		UserID: caller.ID,
		Payload: events.ApplicationSubmittedPayload{
			ApplicationID: app.ID,
			JobID:         jobID,
		},
	})
	return app, nil
}

// ListAppliedJobs returns the jobs the calling candidate has applied to.
func (s *JobService) ListAppliedJobs(ctx context.Context, caller *auth.Principal) ([]domain.Job, error) {
	if caller.Role != domain.RoleCandidate {
		return nil, apperrors.NewForbidden("only candidates can list applied jobs")
	}
	jobs, err := s.applications.ListJobsForCandidate(ctx, caller.ID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return jobs, nil
}

func (s *JobService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
