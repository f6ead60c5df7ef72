package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/classaway/internal/logger"
	"github.com/sbilibin2017/classaway/internal/middlewares"
	"github.com/sbilibin2017/classaway/internal/models"
)

//go:generate mockgen -source=services.go -destination=services_mock.go -package=services

// Error variables
var (
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
)

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// EventPublisher emits activity events. Failures are never fatal to the caller.
type EventPublisher interface {
	Publish(ctx context.Context, event models.ActivityEvent) error
}

// SummaryCache stores per-user dashboard summaries.
type SummaryCache interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.Summary, error)
	Set(ctx context.Context, userID uuid.UUID, summary *models.Summary) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// changeNotifier fans a record change out to the summary cache and the event
// stream once the request transaction commits. Both collaborators are optional.
type changeNotifier struct {
	events EventPublisher
	cache  SummaryCache
}

func (n changeNotifier) changed(ctx context.Context, userID uuid.UUID, entity string, entityID uuid.UUID, operation string) {
	middlewares.AfterCommit(ctx, func() {
		n.notify(ctx, userID, entity, entityID, operation)
	})
}

func (n changeNotifier) notify(ctx context.Context, userID uuid.UUID, entity string, entityID uuid.UUID, operation string) {
	if n.cache != nil {
		if err := n.cache.Invalidate(ctx, userID); err != nil {
			logger.Log.Warnw("failed to invalidate summary", "user_id", userID, "err", err)
		}
	}

	if n.events == nil {
		return
	}
	event := models.ActivityEvent{
		EventID:   uuid.NewString(),
		UserID:    userID,
		Entity:    entity,
		EntityID:  entityID,
		Operation: operation,
		Timestamp: time.Now().Unix(),
	}
	if err := n.events.Publish(ctx, event); err != nil {
		logger.Log.Warnw("failed to publish activity event",
			"entity", entity,
			"entity_id", entityID,
			"operation", operation,
			"err", err,
		)
	}
}

// parseOptionalDate parses s unless it is blank.
func parseOptionalDate(field, s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := models.ParseDate(s)
	if err != nil {
		return nil, validationError("%s must be a date (YYYY-MM-DD)", field)
	}
	return &t, nil
}
