package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/BookingApp/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBookingStorage реализует интерфейс ports.BookingStorage с использованием GORM.
// Чтение всегда делает Preload("User"): при отсутствии пользователя поле User остаётся nil.
type GormBookingStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewGormBookingStorage(db *gorm.DB, logger *slog.Logger) *GormBookingStorage {
	return &GormBookingStorage{db: db, logger: logger}
}

func (s *GormBookingStorage) CreateBooking(ctx context.Context, booking *domain.Booking) error {
	start := time.Now()

	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}

	err := s.db.WithContext(ctx).Omit(clause.Associations).Create(booking).Error
	if err != nil {
		if isCheckViolation(err) {
			return domain.InvalidArgumentf("End time must be after start time")
		}
		s.logger.Error("failed to insert booking", "error", err)
		return fmt.Errorf("insert booking: %w", err)
	}

	s.logger.Debug("booking inserted",
		"booking_id", booking.ID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

func (s *GormBookingStorage) GetBookingByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	var booking domain.Booking
	err := s.db.WithContext(ctx).Preload("User").First(&booking, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.BookingNotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("select booking by id: %w", err)
	}
	return &booking, nil
}

func (s *GormBookingStorage) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := s.db.WithContext(ctx).
		Preload("User").
		Order("created_at ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

// UpdateBooking перезаписывает изменяемые поля бронирования. Связанный
// пользователь не сохраняется.
func (s *GormBookingStorage) UpdateBooking(ctx context.Context, booking *domain.Booking) error {
	booking.UpdatedAt = time.Now().UTC()

	res := s.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", booking.ID).
		Updates(map[string]any{
			"start_time": booking.StartTime,
			"end_time":   booking.EndTime,
			"notes":      booking.Notes,
			"status":     booking.Status,
			"user_id":    booking.UserID,
			"updated_at": booking.UpdatedAt,
		})
	if res.Error != nil {
		if isCheckViolation(res.Error) {
			return domain.InvalidArgumentf("End time must be after start time")
		}
		s.logger.Error("failed to update booking", "booking_id", booking.ID, "error", res.Error)
		return fmt.Errorf("update booking: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.BookingNotFound(booking.ID)
	}
	return nil
}

func (s *GormBookingStorage) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&domain.Booking{}, "id = ?", id)
	if res.Error != nil {
		s.logger.Error("failed to delete booking", "booking_id", id, "error", res.Error)
		return fmt.Errorf("delete booking: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.BookingNotFound(id)
	}
	return nil
}
