package usecase

import (
	"context"

	"github.com/GoArmGo/BookingApp/internal/messaging/payloads"
)

// EventArchiveUseCase сохраняет доменные события в объектное хранилище.
type EventArchiveUseCase interface {
	ArchiveEvent(ctx context.Context, event payloads.Event) error
}
