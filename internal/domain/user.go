package domain

import "time"

// UserRole separates the two account types. The role is fixed at
// registration and never changes afterwards.
type UserRole string

const (
	RoleRecruiter UserRole = "RECRUITER"
	RoleCandidate UserRole = "CANDIDATE"
)

// Valid reports whether the role is one of the known values.
func (r UserRole) Valid() bool {
	return r == RoleRecruiter || r == RoleCandidate
}

// User is the domain model for recruiters and candidates.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	IsActive     bool
	Role         UserRole
	Resume       *Resume
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
