package domain

import "time"

// Application joins one candidate and one job. The (candidate, job) pair is
// unique; an application is never updated or deleted.
type Application struct {
	ID          string
	CandidateID string
	JobID       string
	AppliedAt   time.Time
}
