package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// BookingStatus — статус бронирования.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
)

// BookingStatuses перечисляет все допустимые статусы в порядке объявления.
var BookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCancelled,
	BookingStatusCompleted,
}

// CANCELLED и COMPLETED терминальные: переходов из них нет.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCompleted, BookingStatusCancelled},
	BookingStatusCancelled: {},
	BookingStatusCompleted: {},
}

// IsValid сообщает, является ли значение одним из известных статусов.
func (s BookingStatus) IsValid() bool {
	_, ok := bookingTransitions[s]
	return ok
}

// AllowedTransitions возвращает статусы, в которые можно перейти из s.
func (s BookingStatus) AllowedTransitions() []BookingStatus {
	next := bookingTransitions[s]
	out := make([]BookingStatus, len(next))
	copy(out, next)
	return out
}

// CanTransitionTo сообщает, допустим ли переход s -> next.
// Переход в тот же статус не является изменением и всегда допустим.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidateStatusTransition возвращает ErrInvalidArgument с перечнем допустимых
// статусов, если переход from -> to запрещён.
func ValidateStatusTransition(from, to BookingStatus) error {
	if from.CanTransitionTo(to) {
		return nil
	}

	allowed := from.AllowedTransitions()
	targets := "none"
	if len(allowed) > 0 {
		targets = joinStatuses(allowed)
	}

	return InvalidArgumentf(
		"Invalid status transition from %s to %s. Valid transitions from %s: %s",
		from, to, from, targets,
	)
}

// Booking представляет бронирование временного интервала пользователем.
// Соответствует таблице bookings. Поле User заполняется только при
// eager-загрузке и только если пользователь с UserID существует.
type Booking struct {
	ID        uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	StartTime time.Time     `json:"startTime" gorm:"not null"`
	EndTime   time.Time     `json:"endTime" gorm:"not null"`
	Notes     *string       `json:"notes"`
	Status    BookingStatus `json:"status" gorm:"type:varchar(20);not null"`
	UserID    uuid.UUID     `json:"userId" gorm:"type:uuid;index;not null"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
}

func (Booking) TableName() string {
	return "bookings"
}

// ValidateTimeRange проверяет инвариант endTime > startTime.
func ValidateTimeRange(start, end time.Time) error {
	if !end.After(start) {
		return InvalidArgumentf("End time must be after start time")
	}
	return nil
}

// BookingNotFound — стандартная ошибка отсутствующего бронирования.
func BookingNotFound(id uuid.UUID) error {
	return NotFoundf("Booking with ID %q not found", id.String())
}

// UserNotFound — стандартная ошибка отсутствующего пользователя.
func UserNotFound(id uuid.UUID) error {
	return NotFoundf("User with ID %q not found", id.String())
}

// String нужен для форматирования в логах.
func (s BookingStatus) String() string {
	return string(s)
}

// ParseBookingStatus разбирает строку в статус.
func ParseBookingStatus(raw string) (BookingStatus, error) {
	st := BookingStatus(raw)
	if !st.IsValid() {
		return "", InvalidArgumentf("status must be one of the following values: %s", joinStatuses(BookingStatuses))
	}
	return st, nil
}

func joinStatuses(statuses []BookingStatus) string {
	var b strings.Builder
	for i, st := range statuses {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(string(st))
	}
	return b.String()
}
