package usecase

import (
	"context"
	"time"

	"github.com/GoArmGo/BookingApp/internal/domain"
	"github.com/GoArmGo/BookingApp/internal/reqctx"
	"github.com/google/uuid"
)

// CreateBookingInput — проверенные данные для создания бронирования.
type CreateBookingInput struct {
	StartTime time.Time
	EndTime   time.Time
	Notes     *string
	UserID    uuid.UUID
}

// UpdateBookingInput — частичное обновление: nil означает "не менять".
// ClearNotes сбрасывает заметку в NULL и имеет приоритет над Notes.
type UpdateBookingInput struct {
	StartTime  *time.Time
	EndTime    *time.Time
	Notes      *string
	ClearNotes bool
	UserID     *uuid.UUID
	Status     *domain.BookingStatus
}

// BookingUseCase определяет бизнес-операции над бронированиями.
// Возвращаемые бронирования содержат пользователя, если он существует.
type BookingUseCase interface {
	CreateBooking(ctx context.Context, rc reqctx.RequestContext, in CreateBookingInput) (*domain.Booking, error)
	ListBookings(ctx context.Context, rc reqctx.RequestContext) ([]domain.Booking, error)
	GetBooking(ctx context.Context, rc reqctx.RequestContext, id uuid.UUID) (*domain.Booking, error)
	UpdateBooking(ctx context.Context, rc reqctx.RequestContext, id uuid.UUID, in UpdateBookingInput) (*domain.Booking, error)
	DeleteBooking(ctx context.Context, rc reqctx.RequestContext, id uuid.UUID) (*domain.Booking, error)
}
