package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/BookingApp/internal/core/ports"
	"github.com/GoArmGo/BookingApp/internal/messaging/payloads"
	"github.com/google/uuid"
)

type eventArchiveUseCase struct {
	files     ports.FileStorage
	processed ports.ProcessedEventStore
	logger    *slog.Logger
}

func NewEventArchiveUseCase(
	files ports.FileStorage,
	processed ports.ProcessedEventStore,
	logger *slog.Logger,
) EventArchiveUseCase {
	return &eventArchiveUseCase{
		files:     files,
		processed: processed,
		logger:    logger,
	}
}

// ArchiveObjectKey строит ключ объекта: events/<entity>/<yyyy>/<mm>/<dd>/<eventId>.json.
func ArchiveObjectKey(event payloads.Event) string {
	return fmt.Sprintf("events/%s/%s/%s.json",
		event.Type.Entity(),
		event.Timestamp.UTC().Format("2006/01/02"),
		event.EventID,
	)
}

// ArchiveEvent загружает событие в хранилище ровно один раз.
// Ошибка означает, что сообщение нужно вернуть в очередь.
func (uc *eventArchiveUseCase) ArchiveEvent(ctx context.Context, event payloads.Event) error {
	if event.EventID == uuid.Nil || event.Type == "" {
		uc.logger.Warn("dropping event without id or type", "event_type", event.Type)
		return nil
	}

	done, err := uc.processed.IsProcessed(ctx, event.EventID)
	if err != nil {
		return err
	}
	if done {
		uc.logger.Info("event already archived, skipping", "event_id", event.EventID)
		return nil
	}

	body, err := json.MarshalIndent(event, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.EventID, err)
	}

	key := ArchiveObjectKey(event)
	url, err := uc.files.UploadFile(ctx, key, bytes.NewReader(body), "application/json")
	if err != nil {
		return err
	}

	if err := uc.processed.MarkProcessed(ctx, event.EventID, key); err != nil {
		return err
	}

	uc.logger.Info("event archived",
		"event_id", event.EventID,
		"event_type", event.Type,
		"request_id", event.RequestID,
		"url", url,
	)
	return nil
}
