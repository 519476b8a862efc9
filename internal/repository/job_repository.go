package repository

import (
	"fmt"

	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RISHABH72git/SkillBridge/internal/domain"
)

// JobRepository encapsulates job persistence.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	ListByRecruiter(ctx context.Context, recruiterID string) ([]domain.Job, error)
	ListActive(ctx context.Context) ([]domain.Job, error)
}

type jobRepository struct {
	pool *pgxpool.Pool
}

// NewJobRepository instantiates repository.
func NewJobRepository(pool *pgxpool.Pool) JobRepository {
	return &jobRepository{pool: pool}
}

const jobColumns = `id, title, description, is_active, company_name, pincode, city, country, recruiter_id, created_at, updated_at`

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	const query = `
        INSERT INTO jobs (id, title, description, is_active, company_name, pincode, city, country, recruiter_id)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING created_at, updated_at`
	if err := r.pool.QueryRow(ctx, query,
		job.ID,
		job.Title,
		job.Description,
		job.IsActive,
		job.CompanyName,
		job.Pincode,
		job.City,
		job.Country,
		job.RecruiterID,
	).Scan(&job.CreatedAt, &job.UpdatedAt); err != nil {
		return fmt.Errorf("create job: %w", err)
	}
	return nil
}

func (r *jobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id=$1`

	var job domain.Job
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&job.ID,
		&job.Title,
		&job.Description,
		&job.IsActive,
		&job.CompanyName,
		&job.Pincode,
		&job.City,
		&job.Country,
		&job.RecruiterID,
		&job.CreatedAt,
		&job.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) ListByRecruiter(ctx context.Context, recruiterID string) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE recruiter_id=$1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, recruiterID)
	if err != nil {
		return nil, fmt.Errorf("list jobs by recruiter: %w", err)
	}
	defer rows.Close()
	return scanJobs(rows)
}

func (r *jobRepository) ListActive(ctx context.Context) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE is_active = TRUE ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list active jobs: %w", err)
	}
	defer rows.Close()
	return scanJobs(rows)
}

func scanJobs(rows pgx.Rows) ([]domain.Job, error) {
	var result []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID,
			&job.Title,
			&job.Description,
			&job.IsActive,
			&job.CompanyName,
			&job.Pincode,
			&job.City,
			&job.Country,
			&job.RecruiterID,
			&job.CreatedAt,
			&job.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, job)
	}
	return result, rows.Err()
}
