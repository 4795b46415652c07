package handler

import (
	"log/slog"
	"net/http"

	"github.com/GoArmGo/BookingApp/internal/dto"
	"github.com/GoArmGo/BookingApp/internal/reqctx"
	"github.com/GoArmGo/BookingApp/internal/usecase"
	"github.com/GoArmGo/BookingApp/internal/validation"
)

// BookingHandler — обработчик HTTP-запросов для работы с бронированиями.
type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
	logger         *slog.Logger
}

// NewBookingHandler создаёт новый экземпляр BookingHandler.
func NewBookingHandler(uc usecase.BookingUseCase, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{bookingUseCase: uc, logger: logger}
}

// CreateBooking — POST /bookings.
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	rc := reqctx.FromContext(r.Context())

	var req dto.CreateBookingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithDomainError(w, rc, err, h.logger)
		return
	}
	if err := validation.ValidateCreateBooking(req).Err(); err != nil {
		respondWithDomainError(w, rc, err, h.logger)
		return
	}

	in, err := toCreateBookingInput(req)
	if err != nil {
		respondWithDomainError(w, rc, err, h.logger)
		return
	}

	booking, err := h.bookingUseCase.CreateBooking(r.Context(), rc, in)
	if err != nil {
		respondWithDomainError(w, rc, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusCreated, booking, h.logger)
}

// ListBookings — GET /bookings.
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	rc := reqctx.FromContext(r.Context())

	bookings, err := h.bookingUseCase.ListBookings(r.Context(), rc)
	if err != nil {
		respondWithDomainError(w, rc, err, h.logger)
		return
	}

	h.logger.Info("bookings fetched", "count", len(bookings), "request_id", rc.RequestID)
	respondWithJSON(w, http.StatusOK, bookings, h.logger)
}

// GetBooking — GET /bookings/{id}.
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	rc := reqctx.FromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		respondWithDomainError(w, rc, err, h.logger)
		return
	}

	booking, err := h.bookingUseCase.GetBooking(r.Context(), rc, id)
	if err != nil {
		respondWithDomainError(w, rc, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, booking, h.logger)
}

// UpdateBooking — PUT /bookings/{id}, частичное обновление.
func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	rc := reqctx.FromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		respondWithDomainError(w, rc, err, h.logger)
		return
	}

	var req dto.UpdateBookingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithDomainError(w, rc, err, h.logger)
		return
	}
	if err := validation.ValidateUpdateBooking(req).Err(); err != nil {
		respondWithDomainError(w, rc, err, h.logger)
		return
	}

	in, err := toUpdateBookingInput(req)
	if err != nil {
		respondWithDomainError(w, rc, err, h.logger)
		return
	}

	booking, err := h.bookingUseCase.UpdateBooking(r.Context(), rc, id, in)
	if err != nil {
		respondWithDomainError(w, rc, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, booking, h.logger)
}

// DeleteBooking — DELETE /bookings/{id}. Возвращает удалённое бронирование.
func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	rc := reqctx.FromContext(r.Context())

	id, err := parseID(r)
	if err != nil {
		respondWithDomainError(w, rc, err, h.logger)
		return
	}

	booking, err := h.bookingUseCase.DeleteBooking(r.Context(), rc, id)
	if err != nil {
		respondWithDomainError(w, rc, err, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, booking, h.logger)
}
