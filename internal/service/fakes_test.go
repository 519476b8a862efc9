package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/RISHABH72git/SkillBridge/internal/domain"
	apperrors "github.com/RISHABH72git/SkillBridge/pkg/util"
)

// In-memory repository fakes mirroring the storage-level uniqueness guards.

type fakeUserRepo struct {
	users   map[string]*domain.User // by id
	resumes map[string]*domain.Resume
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:   make(map[string]*domain.User),
		resumes: make(map[string]*domain.Resume),
	}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return apperrors.NewDuplicateEmail(user.Email)
		}
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) UpdateResume(_ context.Context, userID string, resume *domain.Resume) error {
	user, ok := f.users[userID]
	if !ok {
		return pgx.ErrNoRows
	}
	user.Resume = resume
	f.resumes[userID] = resume
	return nil
}

func (f *fakeUserRepo) SetActive(_ context.Context, userID string, active bool) error {
	user, ok := f.users[userID]
	if !ok {
		return pgx.ErrNoRows
	}
	user.IsActive = active
	return nil
}

type fakeJobRepo struct {
	jobs map[string]*domain.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*domain.Job)}
}

func (f *fakeJobRepo) Create(_ context.Context, job *domain.Job) error {
	job.CreatedAt = time.Now()
	job.UpdatedAt = job.CreatedAt
	copied := *job
	f.jobs[job.ID] = &copied
	return nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id string) (*domain.Job, error) {
	job, ok := f.jobs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *job
	return &copied, nil
}

func (f *fakeJobRepo) ListByRecruiter(_ context.Context, recruiterID string) ([]domain.Job, error) {
	var result []domain.Job
	for _, job := range f.jobs {
		if job.RecruiterID == recruiterID {
			result = append(result, *job)
		}
	}
	return result, nil
}

func (f *fakeJobRepo) ListActive(_ context.Context) ([]domain.Job, error) {
	var result []domain.Job
	for _, job := range f.jobs {
		if job.IsActive {
			result = append(result, *job)
		}
	}
	return result, nil
}

type fakeApplicationRepo struct {
	users        *fakeUserRepo
	jobs         *fakeJobRepo
	applications map[string]*domain.Application // by candidate|job
}

func newFakeApplicationRepo(users *fakeUserRepo, jobs *fakeJobRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{
		users:        users,
		jobs:         jobs,
		applications: make(map[string]*domain.Application),
	}
}

func applicationKey(candidateID, jobID string) string {
	return candidateID + "|" + jobID
}

func (f *fakeApplicationRepo) Create(_ context.Context, app *domain.Application) error {
	key := applicationKey(app.CandidateID, app.JobID)
	if _, ok := f.applications[key]; ok {
		return apperrors.NewAlreadyApplied(app.JobID)
	}
	app.AppliedAt = time.Now()
	copied := *app
	f.applications[key] = &copied
	return nil
}

func (f *fakeApplicationRepo) ExistsForCandidateAndJob(_ context.Context, candidateID, jobID string) (bool, error) {
	_, ok := f.applications[applicationKey(candidateID, jobID)]
	return ok, nil
}

func (f *fakeApplicationRepo) ListApplicantsForJob(_ context.Context, jobID string) ([]domain.User, error) {
	var result []domain.User
	for _, app := range f.applications {
		if app.JobID != jobID {
			continue
		}
		if user, ok := f.users.users[app.CandidateID]; ok {
			copied := *user
			copied.PasswordHash = ""
			result = append(result, copied)
		}
	}
	return result, nil
}

func (f *fakeApplicationRepo) ListJobsForCandidate(_ context.Context, candidateID string) ([]domain.Job, error) {
	var result []domain.Job
	for _, app := range f.applications {
		if app.CandidateID != candidateID {
			continue
		}
		if job, ok := f.jobs.jobs[app.JobID]; ok {
			result = append(result, *job)
		}
	}
	return result, nil
}
