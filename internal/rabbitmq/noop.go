package rabbitmq

import (
	"context"
	"log/slog"

	"github.com/GoArmGo/BookingApp/internal/messaging/payloads"
)

// NoopPublisher используется, когда RABBITMQ_URL не задан: события только логируются.
type NoopPublisher struct {
	logger *slog.Logger
}

func NewNoopPublisher(logger *slog.Logger) *NoopPublisher {
	return &NoopPublisher{logger: logger}
}

func (p *NoopPublisher) PublishEvent(_ context.Context, event payloads.Event) error {
	p.logger.Debug("events disabled, dropping event", "event_type", event.Type, "event_id", event.EventID)
	return nil
}
