package events

import (
	"time"

	"github.com/RISHABH72git/SkillBridge/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered       EventType = "user_registered"
	EventJobCreated           EventType = "job_created"
	EventApplicationSubmitted EventType = "application_submitted"
	EventResumeParsed         EventType = "resume_parsed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Email string          `json:"email"`
	Role  domain.UserRole `json:"role"`
}

// JobCreatedPayload payload.
type JobCreatedPayload struct {
	JobID       string `json:"job_id"`
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
}

// ApplicationSubmittedPayload payload.
type ApplicationSubmittedPayload struct {
	ApplicationID string `json:"application_id"`
	JobID         string `json:"job_id"`
}

// ResumeParsedPayload payload.
type ResumeParsedPayload struct {
	SkillCount int `json:"skill_count"`
}
