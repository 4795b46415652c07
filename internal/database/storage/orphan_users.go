package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const selectOrphanUserIDs = `
	SELECT DISTINCT b.user_id
	FROM bookings b
	LEFT JOIN users u ON u.id = b.user_id
	WHERE u.id IS NULL
	ORDER BY b.user_id`

// OrphanUserStorage реализует ports.OrphanUserFinder поверх sqlx.
type OrphanUserStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewOrphanUserStorage(db *sqlx.DB, logger *slog.Logger) *OrphanUserStorage {
	return &OrphanUserStorage{db: db, logger: logger}
}

// ListOrphanBookingUserIDs возвращает userId бронирований без соответствующего пользователя.
func (s *OrphanUserStorage) ListOrphanBookingUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	start := time.Now()

	var ids []uuid.UUID
	if err := s.db.SelectContext(ctx, &ids, selectOrphanUserIDs); err != nil {
		s.logger.Error("failed to select orphan booking user ids", "error", err)
		return nil, fmt.Errorf("select orphan user ids: %w", err)
	}

	s.logger.Info("orphan booking user ids selected",
		"count", len(ids),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return ids, nil
}
