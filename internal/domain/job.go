package domain

import "time"

// Job is a posting owned by exactly one recruiter.
type Job struct {
	ID          string
	Title       string
	Description string
	IsActive    bool
	CompanyName string
	Pincode     int
	City        string
	Country     string
	RecruiterID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
