package usecase

import (
	"context"
	"log/slog"

	"github.com/GoArmGo/BookingApp/internal/core/ports"
	"github.com/GoArmGo/BookingApp/internal/domain"
	"github.com/GoArmGo/BookingApp/internal/messaging/payloads"
	"github.com/GoArmGo/BookingApp/internal/reqctx"
	"github.com/google/uuid"
)

type bookingUseCase struct {
	bookings ports.BookingStorage
	events   ports.EventPublisher
	logger   *slog.Logger
}

// NewBookingUseCase создает новый экземпляр BookingUseCase.
func NewBookingUseCase(
	bookings ports.BookingStorage,
	events ports.EventPublisher,
	logger *slog.Logger,
) BookingUseCase {
	return &bookingUseCase{
		bookings: bookings,
		events:   events,
		logger:   logger,
	}
}

// CreateBooking сохраняет бронирование со статусом PENDING.
func (uc *bookingUseCase) CreateBooking(ctx context.Context, rc reqctx.RequestContext, in CreateBookingInput) (*domain.Booking, error) {
	if err := domain.ValidateTimeRange(in.StartTime, in.EndTime); err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Notes:     in.Notes,
		Status:    domain.BookingStatusPending,
		UserID:    in.UserID,
	}
	if err := uc.bookings.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}

	created, err := uc.bookings.GetBookingByID(ctx, booking.ID)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("booking created",
		"booking_id", created.ID,
		"user_id", created.UserID,
		"user_resolved", created.User != nil,
		"request_id", rc.RequestID,
	)
	publishEvent(ctx, uc.events, uc.logger, rc, payloads.EventBookingCreated, created)
	return created, nil
}

func (uc *bookingUseCase) ListBookings(ctx context.Context, rc reqctx.RequestContext) ([]domain.Booking, error) {
	uc.logger.Info("listing bookings",
		"request_id", rc.RequestID,
		"request_timestamp", rc.Timestamp,
	)
	return uc.bookings.ListBookings(ctx)
}

func (uc *bookingUseCase) GetBooking(ctx context.Context, rc reqctx.RequestContext, id uuid.UUID) (*domain.Booking, error) {
	return uc.bookings.GetBookingByID(ctx, id)
}

// UpdateBooking применяет только переданные поля. Смена статуса проверяется
// по таблице переходов, итоговый интервал времени проверяется целиком.
func (uc *bookingUseCase) UpdateBooking(ctx context.Context, rc reqctx.RequestContext, id uuid.UUID, in UpdateBookingInput) (*domain.Booking, error) {
	booking, err := uc.bookings.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Status != nil && *in.Status != booking.Status {
		if err := domain.ValidateStatusTransition(booking.Status, *in.Status); err != nil {
			return nil, err
		}
	}

	previousStatus := booking.Status
	if in.StartTime != nil {
		booking.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		booking.EndTime = *in.EndTime
	}
	if in.ClearNotes {
		booking.Notes = nil
	} else if in.Notes != nil {
		booking.Notes = in.Notes
	}
	if in.UserID != nil {
		booking.UserID = *in.UserID
	}
	if in.Status != nil {
		booking.Status = *in.Status
	}

	if err := domain.ValidateTimeRange(booking.StartTime, booking.EndTime); err != nil {
		return nil, err
	}

	if err := uc.bookings.UpdateBooking(ctx, booking); err != nil {
		return nil, err
	}

	updated, err := uc.bookings.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("booking updated",
		"booking_id", id,
		"status_from", previousStatus,
		"status_to", updated.Status,
		"request_id", rc.RequestID,
	)
	publishEvent(ctx, uc.events, uc.logger, rc, payloads.EventBookingUpdated, updated)
	return updated, nil
}

// DeleteBooking удаляет бронирование независимо от статуса.
func (uc *bookingUseCase) DeleteBooking(ctx context.Context, rc reqctx.RequestContext, id uuid.UUID) (*domain.Booking, error) {
	booking, err := uc.bookings.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.bookings.DeleteBooking(ctx, id); err != nil {
		return nil, err
	}

	uc.logger.Info("booking deleted", "booking_id", id, "status", booking.Status, "request_id", rc.RequestID)
	publishEvent(ctx, uc.events, uc.logger, rc, payloads.EventBookingDeleted, booking)
	return booking, nil
}
