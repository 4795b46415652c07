package ports

import (
	"context"

	"github.com/GoArmGo/BookingApp/internal/messaging/payloads"
)

// EventPublisher публикует доменные события после успешных изменений.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event payloads.Event) error
}

// EventConsumer используется воркером для получения событий из очереди архива.
type EventConsumer interface {
	// StartConsumingEvents начинает прослушивание очереди и вызывает handler для каждого сообщения.
	// Возвращённый канал закрывается, когда потребление остановлено; если поток
	// сообщений оборвался до отмены ctx, перед закрытием в него пишется ошибка.
	StartConsumingEvents(ctx context.Context, handler func(context.Context, payloads.Event) error) (<-chan error, error)
}
