package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Rovan44/shopping-app-44/internal/domain"
	"github.com/Rovan44/shopping-app-44/internal/events"
	"github.com/Rovan44/shopping-app-44/internal/repository"
)

// notFoundOr turns a missing row into a NotFound business error and wraps
// anything else with context.
func notFoundOr(err error, format string, args ...interface{}) error {
	if errors.Is(err, repository.ErrNotFound) {
		return domain.NewNotFoundError(format, args...)
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// publishEvent is best effort: the write it reports has already committed.
func publishEvent(ctx context.Context, publisher events.Publisher, eventType events.EventType, payload interface{}) {
	event, err := events.NewEvent(eventType, payload)
	if err != nil {
		log.Printf("Event build error (%s): %v", eventType, err)
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		log.Printf("Event publish error (%s): %v", eventType, err)
	}
}

func publisherOrNop(publisher events.Publisher) events.Publisher {
	if publisher == nil {
		return events.NopPublisher{}
	}
	return publisher
}
