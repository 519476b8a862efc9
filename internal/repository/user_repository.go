package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RISHABH72git/SkillBridge/internal/domain"
	apperrors "github.com/RISHABH72git/SkillBridge/pkg/util"
)

// pgUniqueViolation is the class 23 code for a unique constraint breach.
// The constraint is the authoritative guard for concurrent duplicates; the
// service-layer existence checks are advisory only.
const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// UserRepository defines persistence access for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateResume(ctx context.Context, userID string, resume *domain.Resume) error
	SetActive(ctx context.Context, userID string, active bool) error
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (id, name, email, password_hash, is_active, user_type)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.IsActive,
		user.Role,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewDuplicateEmail(user.Email)
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const query = `
        SELECT id, name, email, password_hash, is_active, user_type, resume, created_at, updated_at
        FROM users WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
        SELECT id, name, email, password_hash, is_active, user_type, resume, created_at, updated_at
        FROM users WHERE email=$1`
	return r.fetchSingle(ctx, query, email)
}

func (r *userRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.User, error) {
	var (
		user      domain.User
		resumeRaw []byte
	)
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.IsActive,
		&user.Role,
		&resumeRaw,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if len(resumeRaw) > 0 {
		var resume domain.Resume
		if err := json.Unmarshal(resumeRaw, &resume); err != nil {
			return nil, fmt.Errorf("decode stored resume: %w", err)
		}
		user.Resume = &resume
	}
	return &user, nil
}

// UpdateResume replaces the structured resume on the user record.
func (r *userRepository) UpdateResume(ctx context.Context, userID string, resume *domain.Resume) error {
	raw, err := json.Marshal(resume)
	if err != nil {
		return fmt.Errorf("encode resume: %w", err)
	}

	const query = `UPDATE users SET resume=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, raw, userID)
	if err != nil {
		return fmt.Errorf("update resume: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) SetActive(ctx context.Context, userID string, active bool) error {
	const query = `UPDATE users SET is_active=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, active, userID)
	if err != nil {
		return fmt.Errorf("set active: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
