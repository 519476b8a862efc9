package dto

import "time"

// CreateJobRequest payload for job creation.
type CreateJobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CompanyName string `json:"company_name"`
	Pincode     int    `json:"pincode"`
	City        string `json:"city"`
	Country     string `json:"country"`
}

// JobSummary is the public shape of a posting.
type JobSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CompanyName string    `json:"company_name"`
	Pincode     int       `json:"pincode"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	RecruiterID string    `json:"recruiter_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// JobDetail adds the applicant list for the owning recruiter.
type JobDetail struct {
	JobSummary
	Applicants []UserSummary `json:"applicants,omitempty"`
}

// ApplicationResponse confirms a submitted application.
type ApplicationResponse struct {
	ID        string    `json:"id"`
	JobID     string    `json:"job_id"`
	AppliedAt time.Time `json:"applied_at"`
}
