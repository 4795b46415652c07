package ports

import (
	"context"

	"github.com/GoArmGo/BookingApp/internal/domain"
	"github.com/google/uuid"
)

// UserStorage определяет методы для взаимодействия с хранилищем пользователей.
// Отсутствующая запись сообщается как domain.ErrNotFound,
// занятый email — как domain.ErrConflict.
type UserStorage interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// BookingStorage определяет методы для взаимодействия с хранилищем бронирований.
// Методы чтения подгружают связанного пользователя (eager join), если он существует.
type BookingStorage interface {
	CreateBooking(ctx context.Context, booking *domain.Booking) error
	GetBookingByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	UpdateBooking(ctx context.Context, booking *domain.Booking) error
	DeleteBooking(ctx context.Context, id uuid.UUID) error
}

// OrphanUserFinder находит userId бронирований, для которых нет пользователя.
type OrphanUserFinder interface {
	ListOrphanBookingUserIDs(ctx context.Context) ([]uuid.UUID, error)
}

// ProcessedEventStore хранит идентификаторы уже заархивированных событий,
// чтобы повторная доставка из очереди не порождала дубликатов.
type ProcessedEventStore interface {
	IsProcessed(ctx context.Context, eventID uuid.UUID) (bool, error)
	MarkProcessed(ctx context.Context, eventID uuid.UUID, objectKey string) error
}
