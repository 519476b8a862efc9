package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RISHABH72git/SkillBridge/internal/auth"
	"github.com/RISHABH72git/SkillBridge/internal/domain"
	apperrors "github.com/RISHABH72git/SkillBridge/pkg/util"
)

type jobServiceFixture struct {
	svc   *JobService
	users *fakeUserRepo
	jobs  *fakeJobRepo
	apps  *fakeApplicationRepo
}

func newJobServiceFixture() *jobServiceFixture {
	users := newFakeUserRepo()
	jobs := newFakeJobRepo()
	apps := newFakeApplicationRepo(users, jobs)
	svc := NewJobService(JobDependencies{
		JobRepo:         jobs,
		ApplicationRepo: apps,
	})
	return &jobServiceFixture{svc: svc, users: users, jobs: jobs, apps: apps}
}

func (f *jobServiceFixture) addUser(t *testing.T, role domain.UserRole, email string) *auth.Principal {
	t.Helper()
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         "Someone",
		Email:        email,
		PasswordHash: "x",
		IsActive:     true,
		Role:         role,
	}
	require.NoError(t, f.users.Create(context.Background(), user))
	return &auth.Principal{ID: user.ID, Email: user.Email, Role: user.Role}
}

func (f *jobServiceFixture) addJob(t *testing.T, recruiter *auth.Principal, title string) *domain.Job {
	t.Helper()
	job, err := f.svc.CreateJob(context.Background(), recruiter, JobCreateInput{
		Title:       title,
		Description: "desc",
		CompanyName: "Acme",
		Pincode:     560001,
		City:        "Bengaluru",
		Country:     "India",
	})
	require.NoError(t, err)
	return job
}

func TestCreateJob(t *testing.T) {
	fix := newJobServiceFixture()
	recruiter := fix.addUser(t, domain.RoleRecruiter, "r@x.com")
	candidate := fix.addUser(t, domain.RoleCandidate, "c@x.com")

	job := fix.addJob(t, recruiter, "Backend Engineer")
	assert.Equal(t, recruiter.ID, job.RecruiterID)
	assert.True(t, job.IsActive)

	_, err := fix.svc.CreateJob(context.Background(), candidate, JobCreateInput{
		Title: "Nope", Description: "d", CompanyName: "Acme",
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeForbidden, apperrors.CodeOf(err))
}

func TestListJobsScoping(t *testing.T) {
	fix := newJobServiceFixture()
	recruiterA := fix.addUser(t, domain.RoleRecruiter, "ra@x.com")
	recruiterB := fix.addUser(t, domain.RoleRecruiter, "rb@x.com")
	candidate := fix.addUser(t, domain.RoleCandidate, "c@x.com")

	jobA := fix.addJob(t, recruiterA, "Job A")
	jobB := fix.addJob(t, recruiterB, "Job B")

	t.Run("recruiter sees only own jobs", func(t *testing.T) {
		jobs, err := fix.svc.ListJobs(context.Background(), recruiterA)
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, jobA.ID, jobs[0].ID)
	})

	t.Run("candidate sees all active jobs", func(t *testing.T) {
		jobs, err := fix.svc.ListJobs(context.Background(), candidate)
		require.NoError(t, err)
		ids := make([]string, 0, len(jobs))
		for _, job := range jobs {
			ids = append(ids, job.ID)
		}
		assert.ElementsMatch(t, []string{jobA.ID, jobB.ID}, ids)
	})
}

func TestGetJob(t *testing.T) {
	fix := newJobServiceFixture()
	owner := fix.addUser(t, domain.RoleRecruiter, "owner@x.com")
	other := fix.addUser(t, domain.RoleRecruiter, "other@x.com")
	candidate := fix.addUser(t, domain.RoleCandidate, "c@x.com")

	job := fix.addJob(t, owner, "Job")
	_, err := fix.svc.Apply(context.Background(), candidate, job.ID)
	require.NoError(t, err)

	t.Run("owner gets job with applicants", func(t *testing.T) {
		detail, err := fix.svc.GetJob(context.Background(), owner, job.ID)
		require.NoError(t, err)
		assert.Equal(t, job.ID, detail.Job.ID)
		require.Len(t, detail.Applicants, 1)
		assert.Equal(t, candidate.ID, detail.Applicants[0].ID)
		assert.Empty(t, detail.Applicants[0].PasswordHash)
	})

	t.Run("non-owning recruiter gets not found", func(t *testing.T) {
		_, err := fix.svc.GetJob(context.Background(), other, job.ID)
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
	})

	t.Run("candidate gets job without applicants", func(t *testing.T) {
		detail, err := fix.svc.GetJob(context.Background(), candidate, job.ID)
		require.NoError(t, err)
		assert.Equal(t, job.ID, detail.Job.ID)
		assert.Empty(t, detail.Applicants)
	})

	t.Run("missing job", func(t *testing.T) {
		_, err := fix.svc.GetJob(context.Background(), candidate, "missing")
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
	})
}

func TestApply(t *testing.T) {
	fix := newJobServiceFixture()
	recruiter := fix.addUser(t, domain.RoleRecruiter, "r@x.com")
	candidate := fix.addUser(t, domain.RoleCandidate, "c@x.com")
	job := fix.addJob(t, recruiter, "Job")

	t.Run("recruiter forbidden regardless of job validity", func(t *testing.T) {
		_, err := fix.svc.Apply(context.Background(), recruiter, job.ID)
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeForbidden, apperrors.CodeOf(err))

		_, err = fix.svc.Apply(context.Background(), recruiter, "missing")
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeForbidden, apperrors.CodeOf(err))
	})

	t.Run("missing job", func(t *testing.T) {
		_, err := fix.svc.Apply(context.Background(), candidate, "missing")
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
	})

	t.Run("second apply rejected, one application persists", func(t *testing.T) {
		app, err := fix.svc.Apply(context.Background(), candidate, job.ID)
		require.NoError(t, err)
		assert.Equal(t, candidate.ID, app.CandidateID)
		assert.False(t, app.AppliedAt.IsZero())

		_, err = fix.svc.Apply(context.Background(), candidate, job.ID)
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeAlreadyApplied, apperrors.CodeOf(err))
		assert.Len(t, fix.apps.applications, 1)
	})
}

func TestListAppliedJobs(t *testing.T) {
	fix := newJobServiceFixture()
	recruiter := fix.addUser(t, domain.RoleRecruiter, "r@x.com")
	candidate := fix.addUser(t, domain.RoleCandidate, "c@x.com")
	job := fix.addJob(t, recruiter, "Job")

	_, err := fix.svc.Apply(context.Background(), candidate, job.ID)
	require.NoError(t, err)

	jobs, err := fix.svc.ListAppliedJobs(context.Background(), candidate)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, job.ID, jobs[0].ID)

	_, err = fix.svc.ListAppliedJobs(context.Background(), recruiter)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeForbidden, apperrors.CodeOf(err))
}
