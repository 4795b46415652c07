package validation

import (
	"strings"

	"github.com/GoArmGo/BookingApp/internal/domain"
)

// FieldError описывает нарушение правила для одного поля запроса.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors — набор ошибок валидации запроса.
// errors.Is(err, domain.ErrInvalidArgument) для него истинно.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Message
	}
	return strings.Join(msgs, "; ")
}

func (e Errors) Unwrap() error {
	return domain.ErrInvalidArgument
}

// Err возвращает nil для пустого набора, чтобы не получить ненулевой error
// с пустым срезом внутри.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func (e *Errors) add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

func (e *Errors) addIf(fe *FieldError) {
	if fe != nil {
		*e = append(*e, *fe)
	}
}
