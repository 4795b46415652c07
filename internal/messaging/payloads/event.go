package payloads

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EventType — тип доменного события, он же routing key в RabbitMQ.
type EventType string

const (
	EventUserCreated    EventType = "user.created"
	EventUserUpdated    EventType = "user.updated"
	EventUserDeleted    EventType = "user.deleted"
	EventBookingCreated EventType = "booking.created"
	EventBookingUpdated EventType = "booking.updated"
	EventBookingDeleted EventType = "booking.deleted"
)

// Entity возвращает сущность события: "user" или "booking".
func (t EventType) Entity() string {
	entity, _, _ := strings.Cut(string(t), ".")
	return entity
}

// Event представляет доменное событие, публикуемое в RabbitMQ
// и архивируемое воркером в объектное хранилище.
type Event struct {
	EventID   uuid.UUID       `json:"eventId"`
	RequestID string          `json:"requestId"`
	Type      EventType       `json:"eventType"`
	Timestamp time.Time       `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// NewEvent сериализует data и заполняет служебные поля события.
func NewEvent(eventType EventType, requestID string, data any) (Event, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Event{}, err
	}
	return Event{
		EventID:   uuid.New(),
		RequestID: requestID,
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Data:      raw,
	}, nil
}
