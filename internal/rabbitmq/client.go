package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/BookingApp/internal/config"
	"github.com/GoArmGo/BookingApp/internal/messaging/payloads"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Client представляет собой клиент RabbitMQ: публикует доменные события
// в topic exchange и потребляет их из очереди архива.
type Client struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	queue    amqp.Queue
	logger   *slog.Logger
}

// NewClient подключается к RabbitMQ, объявляет exchange и очередь архива,
// привязанную ко всем событиям (routing key "#").
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	client := &Client{
		exchange: cfg.RabbitMQ.RabbitMQExchange,
		logger:   logger,
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.RabbitMQURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	client.conn = conn

	ch, err := conn.Channel()
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}
	client.channel = ch

	err = ch.ExchangeDeclare(
		client.exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to declare exchange %q: %w", client.exchange, err)
	}

	// Очередь для сообщений, которые не удалось обработать
	dlqName := cfg.RabbitMQ.RabbitMQDLQName
	if _, err := ch.QueueDeclare(
		dlqName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to declare dead-letter queue %q: %w", dlqName, err)
	}

	q, err := ch.QueueDeclare(
		cfg.RabbitMQ.RabbitMQQueueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		deadLetterArgs(dlqName),
	)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to declare a queue: %w", err)
	}
	client.queue = q

	if err := ch.QueueBind(q.Name, "#", client.exchange, false, nil); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to bind queue %q: %w", q.Name, err)
	}

	logger.Info("RabbitMQ client ready",
		"exchange", client.exchange,
		"queue", q.Name,
		"dlq", dlqName,
		"messages", q.Messages,
	)
	return client, nil
}

// deadLetterArgs направляет отклонённые сообщения через default exchange в очередь dlq.
func deadLetterArgs(dlq string) amqp.Table {
	return amqp.Table{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": dlq,
	}
}

// Close закрывает канал и соединение RabbitMQ.
func (c *Client) Close() error {
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			c.logger.Warn("error closing RabbitMQ channel", "error", err)
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			return fmt.Errorf("close RabbitMQ connection: %w", err)
		}
	}
	return nil
}

// PublishEvent публикует событие с routing key, равным его типу.
// Реализует ports.EventPublisher.
func (c *Client) PublishEvent(ctx context.Context, event payloads.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event to JSON: %w", err)
	}

	publishCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = c.channel.PublishWithContext(
		publishCtx,
		c.exchange,
		string(event.Type),
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:   "application/json",
			CorrelationId: event.RequestID,
			MessageId:     event.EventID.String(),
			DeliveryMode:  amqp.Persistent,
			Timestamp:     event.Timestamp,
			Body:          body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish event %s: %w", event.Type, err)
	}

	c.logger.Debug("event published",
		"event_type", event.Type,
		"event_id", event.EventID,
		"request_id", event.RequestID,
	)
	return nil
}

// StartConsumingEvents начинает потребление событий из очереди архива.
// Реализует ports.EventConsumer.
func (c *Client) StartConsumingEvents(ctx context.Context, handler func(context.Context, payloads.Event) error) (<-chan error, error) {
	msgs, err := c.channel.Consume(
		c.queue.Name,
		"",    // consumer
		false, // auto-ack (подтверждаем вручную)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register a consumer: %w", err)
	}

	c.logger.Info("consumer registered", "queue", c.queue.Name)

	done := make(chan error, 1)
	go consumeLoop(ctx, msgs, handler, c.logger, done)
	return done, nil
}

// ErrDeliveriesClosed означает, что брокер закрыл поток сообщений (потеря
// соединения или закрытие канала).
var ErrDeliveriesClosed = errors.New("rabbitmq delivery channel closed")

// consumeLoop обрабатывает сообщения до отмены ctx или закрытия msgs и затем закрывает done.
func consumeLoop(
	ctx context.Context,
	msgs <-chan amqp.Delivery,
	handler func(context.Context, payloads.Event) error,
	logger *slog.Logger,
	done chan<- error,
) {
	defer close(done)

	for {
		select {
		case msg, ok := <-msgs:
			if !ok {
				if ctx.Err() != nil {
					return
				}
				logger.Error("RabbitMQ delivery channel closed, stopping consumer")
				done <- ErrDeliveriesClosed
				return
			}
			handleDelivery(ctx, msg, handler, logger)
		case <-ctx.Done():
			logger.Info("context cancelled, stopping RabbitMQ consumer")
			return
		}
	}
}

// handleDelivery декодирует сообщение и подтверждает его по результату обработки.
// Нечитаемое сообщение и ошибка обработчика приводят к Nack без requeue:
// брокер перекладывает сообщение в dead-letter очередь.
func handleDelivery(ctx context.Context, msg amqp.Delivery, handler func(context.Context, payloads.Event) error, logger *slog.Logger) {
	var event payloads.Event
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		logger.Error("failed to unmarshal event", "error", err, "body", string(msg.Body))
		if err := msg.Nack(false, false); err != nil {
			logger.Error("failed to nack malformed message", "error", err)
		}
		return
	}

	if err := handler(ctx, event); err != nil {
		logger.Error("failed to process event, moving to dead-letter queue", "event_id", event.EventID, "event_type", event.Type, "error", err)
		if err := msg.Nack(false, false); err != nil {
			logger.Error("failed to nack message", "event_id", event.EventID, "error", err)
		}
		return
	}

	if err := msg.Ack(false); err != nil {
		logger.Error("failed to ack message", "event_id", event.EventID, "error", err)
		return
	}
	logger.Debug("event processed", "event_id", event.EventID, "event_type", event.Type)
}
