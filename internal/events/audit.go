package events

import (
	"context"

	"go.uber.org/zap"
)

// AuditLogger writes every domain event to the structured log.
type AuditLogger struct {
	logger *zap.Logger
}

// NewAuditLogger creates the subscriber.
func NewAuditLogger(logger *zap.Logger) *AuditLogger {
	return &AuditLogger{logger: logger}
}

// RegisterHandlers subscribes to all event types.
func (a *AuditLogger) RegisterHandlers(dispatcher Dispatcher) {
	if dispatcher == nil {
		return
	}
	for _, eventType := range []EventType{
		EventUserRegistered,
		EventJobCreated,
		EventApplicationSubmitted,
		EventResumeParsed,
	} {
		dispatcher.Subscribe(eventType, a.handle)
	}
}

func (a *AuditLogger) handle(_ context.Context, event Event) error {
	a.logger.Info("domain event",
		zap.String("event_id", event.ID),
		zap.String("type", string(event.Type)),
		zap.String("user_id", event.UserID),
		zap.Any("payload", event.Payload),
	)
	return nil
}
