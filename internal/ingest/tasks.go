package ingest

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// TypeResumeIngest is the queue task type shared by producer and consumer.
const TypeResumeIngest = "resume:ingest"

// ResumeIngestPayload carries the minimum needed to run the pipeline; the
// file itself is found on disk by user id.
type ResumeIngestPayload struct {
	UserID string `json:"user_id"`
}

// NewResumeIngestTask builds a task for one uploaded resume.
func NewResumeIngestTask(userID string) (*asynq.Task, error) {
	payload, err := json.Marshal(ResumeIngestPayload{UserID: userID})
	if err != nil {
		return nil, err
	}
	// Failures are terminal; the user retries by re-uploading.
	return asynq.NewTask(TypeResumeIngest, payload, asynq.MaxRetry(0)), nil
}
