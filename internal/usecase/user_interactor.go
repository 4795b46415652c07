package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/BookingApp/internal/core/ports"
	"github.com/GoArmGo/BookingApp/internal/domain"
	"github.com/GoArmGo/BookingApp/internal/messaging/payloads"
	"github.com/GoArmGo/BookingApp/internal/reqctx"
	"github.com/google/uuid"
)

type userUseCase struct {
	users  ports.UserStorage
	hasher ports.PasswordHasher
	events ports.EventPublisher
	logger *slog.Logger
}

// NewUserUseCase создает новый экземпляр UserUseCase.
func NewUserUseCase(
	users ports.UserStorage,
	hasher ports.PasswordHasher,
	events ports.EventPublisher,
	logger *slog.Logger,
) UserUseCase {
	return &userUseCase{
		users:  users,
		hasher: hasher,
		events: events,
		logger: logger,
	}
}

func (uc *userUseCase) CreateUser(ctx context.Context, rc reqctx.RequestContext, in CreateUserInput) (*domain.User, error) {
	taken, err := uc.emailTaken(ctx, in.Email, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.Conflictf("User with this email already exists")
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: hash,
	}
	if err := uc.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	uc.logger.Info("user created", "user_id", user.ID, "request_id", rc.RequestID)
	publishEvent(ctx, uc.events, uc.logger, rc, payloads.EventUserCreated, user)
	return user, nil
}

func (uc *userUseCase) ListUsers(ctx context.Context, rc reqctx.RequestContext) ([]domain.User, error) {
	return uc.users.ListUsers(ctx)
}

func (uc *userUseCase) GetUser(ctx context.Context, rc reqctx.RequestContext, id uuid.UUID) (*domain.User, error) {
	return uc.users.GetUserByID(ctx, id)
}

func (uc *userUseCase) UpdateUser(ctx context.Context, rc reqctx.RequestContext, id uuid.UUID, in UpdateUserInput) (*domain.User, error) {
	user, err := uc.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != nil && *in.Email != user.Email {
		taken, err := uc.emailTaken(ctx, *in.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.Conflictf("Email is already existing")
		}
		user.Email = *in.Email
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Password != nil {
		hash, err := uc.hasher.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := uc.users.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	uc.logger.Info("user updated", "user_id", user.ID, "request_id", rc.RequestID)
	publishEvent(ctx, uc.events, uc.logger, rc, payloads.EventUserUpdated, user)
	return user, nil
}

func (uc *userUseCase) DeleteUser(ctx context.Context, rc reqctx.RequestContext, id uuid.UUID) (*domain.User, error) {
	user, err := uc.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.users.DeleteUser(ctx, id); err != nil {
		return nil, err
	}

	uc.logger.Info("user deleted", "user_id", id, "request_id", rc.RequestID)
	publishEvent(ctx, uc.events, uc.logger, rc, payloads.EventUserDeleted, user)
	return user, nil
}

// emailTaken сообщает, принадлежит ли email пользователю, отличному от self.
func (uc *userUseCase) emailTaken(ctx context.Context, email string, self uuid.UUID) (bool, error) {
	existing, err := uc.users.GetUserByEmail(ctx, email)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("check email uniqueness: %w", err)
	}
	return existing.ID != self, nil
}
