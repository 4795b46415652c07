package usecase

import (
	"context"
	"log/slog"

	"github.com/GoArmGo/BookingApp/internal/core/ports"
	"github.com/GoArmGo/BookingApp/internal/messaging/payloads"
	"github.com/GoArmGo/BookingApp/internal/reqctx"
)

// publishEvent публикует доменное событие. Ошибка публикации только логируется.
func publishEvent(
	ctx context.Context,
	events ports.EventPublisher,
	logger *slog.Logger,
	rc reqctx.RequestContext,
	eventType payloads.EventType,
	data any,
) {
	event, err := payloads.NewEvent(eventType, rc.RequestID, data)
	if err != nil {
		logger.Error("failed to build event", "event_type", eventType, "error", err)
		return
	}

	if err := events.PublishEvent(ctx, event); err != nil {
		logger.Warn("failed to publish event",
			"event_type", eventType,
			"event_id", event.EventID,
			"request_id", rc.RequestID,
			"error", err,
		)
	}
}
