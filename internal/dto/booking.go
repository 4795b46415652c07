package dto

// CreateBookingRequest — тело POST /bookings.
// Статус при создании не принимается: новое бронирование всегда PENDING.
type CreateBookingRequest struct {
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Notes     *string `json:"notes"`
	UserID    string  `json:"userId"`
}

// UpdateBookingRequest — тело PUT /bookings/{id}. nil означает "поле не передано",
// для notes явный null очищает заметку.
type UpdateBookingRequest struct {
	StartTime *string        `json:"startTime"`
	EndTime   *string        `json:"endTime"`
	Notes     NullableString `json:"notes"`
	UserID    *string        `json:"userId"`
	Status    *string        `json:"status"`
}
