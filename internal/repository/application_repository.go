package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RISHABH72git/SkillBridge/internal/domain"
	apperrors "github.com/RISHABH72git/SkillBridge/pkg/util"
)

// ApplicationRepository encapsulates application persistence.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	ExistsForCandidateAndJob(ctx context.Context, candidateID, jobID string) (bool, error)
	ListApplicantsForJob(ctx context.Context, jobID string) ([]domain.User, error)
	ListJobsForCandidate(ctx context.Context, candidateID string) ([]domain.Job, error)
}

type applicationRepository struct {
	pool *pgxpool.Pool
}

// NewApplicationRepository instantiates repository.
func NewApplicationRepository(pool *pgxpool.Pool) ApplicationRepository {
	return &applicationRepository{pool: pool}
}

func (r *applicationRepository) Create(ctx context.Context, app *domain.Application) error {
	const query = `
        INSERT INTO applications (id, candidate_id, job_id)
        VALUES ($1, $2, $3)
        RETURNING applied_at`
	err := r.pool.QueryRow(ctx, query, app.ID, app.CandidateID, app.JobID).Scan(&app.AppliedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAlreadyApplied(app.JobID)
		}
		return fmt.Errorf("create application: %w", err)
	}
	return nil
}

func (r *applicationRepository) ExistsForCandidateAndJob(ctx context.Context, candidateID, jobID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM applications WHERE candidate_id=$1 AND job_id=$2)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, candidateID, jobID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check application: %w", err)
	}
	return exists, nil
}

// ListApplicantsForJob returns the candidates who applied to a job. The
// password hash is not selected; applicant snapshots never carry it.
func (r *applicationRepository) ListApplicantsForJob(ctx context.Context, jobID string) ([]domain.User, error) {
	const query = `
        SELECT u.id, u.name, u.email, u.is_active, u.user_type, u.created_at, u.updated_at
        FROM applications a
        JOIN users u ON u.id = a.candidate_id
        WHERE a.job_id=$1
        ORDER BY a.applied_at ASC`
	rows, err := r.pool.Query(ctx, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("list applicants: %w", err)
	}
	defer rows.Close()

	var result []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.IsActive,
			&user.Role,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, user)
	}
	return result, rows.Err()
}

func (r *applicationRepository) ListJobsForCandidate(ctx context.Context, candidateID string) ([]domain.Job, error) {
	const query = `
        SELECT j.id, j.title, j.description, j.is_active, j.company_name, j.pincode, j.city, j.country, j.recruiter_id, j.created_at, j.updated_at
        FROM applications a
        JOIN jobs j ON j.id = a.job_id
        WHERE a.candidate_id=$1
        ORDER BY a.applied_at DESC`
	rows, err := r.pool.Query(ctx, query, candidateID)
	if err != nil {
		return nil, fmt.Errorf("list applied jobs: %w", err)
	}
	defer rows.Close()
	return scanJobs(rows)
}
