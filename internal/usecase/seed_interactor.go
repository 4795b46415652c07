package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/BookingApp/internal/core/ports"
	"github.com/GoArmGo/BookingApp/internal/domain"
	"github.com/google/uuid"
)

const seedDefaultPassword = "password123"

type seedUseCase struct {
	orphans ports.OrphanUserFinder
	users   ports.UserStorage
	hasher  ports.PasswordHasher
	logger  *slog.Logger
}

func NewSeedUseCase(
	orphans ports.OrphanUserFinder,
	users ports.UserStorage,
	hasher ports.PasswordHasher,
	logger *slog.Logger,
) SeedUseCase {
	return &seedUseCase{
		orphans: orphans,
		users:   users,
		hasher:  hasher,
		logger:  logger,
	}
}

// BackfillOrphanUsers создаёт пользователя с тем же ID для каждого userId без записи.
// Повторный запуск ничего не создаёт.
func (uc *seedUseCase) BackfillOrphanUsers(ctx context.Context) (SeedResult, error) {
	ids, err := uc.orphans.ListOrphanBookingUserIDs(ctx)
	if err != nil {
		return SeedResult{}, err
	}

	result := SeedResult{Found: len(ids)}
	uc.logger.Info("found booking user ids without users", "count", len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	hash, err := uc.hasher.Hash(seedDefaultPassword)
	if err != nil {
		return result, err
	}

	for _, id := range ids {
		user := placeholderUser(id, hash)

		err := uc.users.CreateUser(ctx, user)
		if errors.Is(err, domain.ErrConflict) {
			uc.logger.Warn("placeholder email already taken, skipping", "user_id", id, "email", user.Email)
			result.Skipped++
			continue
		}
		if err != nil {
			return result, fmt.Errorf("create placeholder user %s: %w", id, err)
		}

		uc.logger.Info("created user for booking user id", "user_id", id, "email", user.Email)
		result.Created++
	}

	uc.logger.Info("seed completed", "created", result.Created, "skipped", result.Skipped)
	return result, nil
}

func placeholderUser(id uuid.UUID, passwordHash string) *domain.User {
	prefix := id.String()[:8]
	return &domain.User{
		ID:           id,
		Email:        fmt.Sprintf("user-%s@example.com", prefix),
		Name:         "User " + prefix,
		PasswordHash: passwordHash,
	}
}
