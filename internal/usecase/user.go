package usecase

import (
	"context"

	"github.com/GoArmGo/BookingApp/internal/domain"
	"github.com/GoArmGo/BookingApp/internal/reqctx"
	"github.com/google/uuid"
)

// CreateUserInput — проверенные данные для создания пользователя.
type CreateUserInput struct {
	Email    string
	Name     string
	Password string
}

// UpdateUserInput — частичное обновление: nil означает "не менять".
type UpdateUserInput struct {
	Email    *string
	Name     *string
	Password *string
}

// UserUseCase определяет бизнес-операции над пользователями.
// Возвращаемые domain.User никогда не сериализуют пароль.
type UserUseCase interface {
	CreateUser(ctx context.Context, rc reqctx.RequestContext, in CreateUserInput) (*domain.User, error)
	ListUsers(ctx context.Context, rc reqctx.RequestContext) ([]domain.User, error)
	GetUser(ctx context.Context, rc reqctx.RequestContext, id uuid.UUID) (*domain.User, error)
	UpdateUser(ctx context.Context, rc reqctx.RequestContext, id uuid.UUID, in UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, rc reqctx.RequestContext, id uuid.UUID) (*domain.User, error)
}
