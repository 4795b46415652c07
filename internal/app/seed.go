package app

import (
	"context"
	"fmt"
	"log/slog"
)

// runSeed однократно создаёт недостающих пользователей для существующих бронирований.
func runSeed(ctx context.Context, deps Deps, logger *slog.Logger) error {
	if deps.SeedUseCase == nil {
		return fmt.Errorf("seed: зависимости не инициализированы")
	}

	result, err := deps.SeedUseCase.BackfillOrphanUsers(ctx)
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	logger.Info("seed completed",
		"found", result.Found,
		"created", result.Created,
		"skipped", result.Skipped,
	)
	return nil
}
