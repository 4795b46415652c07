package usecase

import "context"

// SeedResult — итог заполнения пользователей для "висящих" бронирований.
type SeedResult struct {
	Found   int
	Created int
	Skipped int
}

// SeedUseCase создаёт пользователей-заглушки для userId бронирований,
// у которых нет пользователя.
type SeedUseCase interface {
	BackfillOrphanUsers(ctx context.Context) (SeedResult, error)
}
