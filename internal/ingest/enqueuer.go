package ingest

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
)

// Enqueuer dispatches a resume ingestion task after the upload response is
// committed. The HTTP path never blocks on the pipeline itself.
type Enqueuer interface {
	EnqueueResumeIngest(ctx context.Context, userID string) error
}

type asynqEnqueuer struct {
	client *asynq.Client
}

// NewEnqueuer wraps an asynq client.
func NewEnqueuer(client *asynq.Client) Enqueuer {
	return &asynqEnqueuer{client: client}
}

func (e *asynqEnqueuer) EnqueueResumeIngest(ctx context.Context, userID string) error {
	task, err := NewResumeIngestTask(userID)
	if err != nil {
		return fmt.Errorf("build ingest task: %w", err)
	}
	if _, err := e.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("enqueue ingest task: %w", err)
	}
	return nil
}
