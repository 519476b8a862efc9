package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/RISHABH72git/SkillBridge/internal/domain"
	"github.com/RISHABH72git/SkillBridge/internal/events"
	"github.com/RISHABH72git/SkillBridge/internal/inference"
	"github.com/RISHABH72git/SkillBridge/internal/repository"
	"github.com/RISHABH72git/SkillBridge/internal/storage"

	"github.com/google/uuid"
)

// Handler consumes resume ingestion tasks: extract text, prompt the external
// model, parse the strict-JSON completion, persist it onto the user record.
// Any step failing ends the task; the user's resume field stays untouched.
type Handler struct {
	store      *storage.ResumeStore
	extractor  TextExtractor
	inference  inference.Client
	users      repository.UserRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewHandler constructs the task handler.
func NewHandler(store *storage.ResumeStore, extractor TextExtractor, client inference.Client, users repository.UserRepository, dispatcher events.Dispatcher, logger *zap.Logger) *Handler {
	return &Handler{
		store:      store,
		extractor:  extractor,
		inference:  client,
		users:      users,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// ProcessTask implements asynq.Handler.
func (h *Handler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload ResumeIngestPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		h.logger.Error("unmarshal ingest payload", zap.Error(err))
		return err
	}

	logger := h.logger.With(zap.String("user_id", payload.UserID))

	resume, err := h.run(ctx, payload.UserID)
	if err != nil {
		// Logged, never surfaced to the user; the upload response is long gone.
		logger.Error("resume ingestion failed", zap.Error(err))
		return err
	}

	logger.Info("resume ingested", zap.Int("skills", len(resume.Skills)))
	h.publishParsed(ctx, payload.UserID, resume)
	return nil
}

func (h *Handler) run(ctx context.Context, userID string) (*domain.Resume, error) {
	text, err := h.extractor.ExtractText(h.store.Path(userID))
	if err != nil {
		return nil, fmt.Errorf("extract text: %w", err)
	}

	completion, err := h.inference.Complete(ctx, BuildResumePrompt(text))
	if err != nil {
		return nil, fmt.Errorf("inference: %w", err)
	}

	var resume domain.Resume
	if err := json.Unmarshal([]byte(completion), &resume); err != nil {
		return nil, fmt.Errorf("parse completion: %w", err)
	}

	if err := h.users.UpdateResume(ctx, userID, &resume); err != nil {
		return nil, fmt.Errorf("persist resume: %w", err)
	}
	return &resume, nil
}

func (h *Handler) publishParsed(ctx context.Context, userID string, resume *domain.Resume) {
	if h.dispatcher == nil {
		return
	}
	_ = h.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventResumeParsed,
		UserID:    userID,
		Timestamp: time.Now(),
		Payload: events.ResumeParsedPayload{
			SkillCount: len(resume.Skills),
		},
	})
}
