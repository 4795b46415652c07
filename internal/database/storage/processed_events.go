package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ProcessedEventStorage реализует ports.ProcessedEventStore поверх sqlx.
type ProcessedEventStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewProcessedEventStorage(db *sqlx.DB, logger *slog.Logger) *ProcessedEventStorage {
	return &ProcessedEventStorage{db: db, logger: logger}
}

func (s *ProcessedEventStorage) IsProcessed(ctx context.Context, eventID uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM processed_events WHERE event_id = $1)`, eventID)
	if err != nil {
		return false, fmt.Errorf("check processed event: %w", err)
	}
	return exists, nil
}

// MarkProcessed идемпотентен: повторная отметка того же события ничего не меняет.
func (s *ProcessedEventStorage) MarkProcessed(ctx context.Context, eventID uuid.UUID, objectKey string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO processed_events (event_id, object_key, processed_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (event_id) DO NOTHING`,
		eventID, objectKey, time.Now().UTC(),
	)
	if err != nil {
		s.logger.Error("failed to mark event processed", "event_id", eventID, "error", err)
		return fmt.Errorf("insert processed event: %w", err)
	}
	return nil
}
