package validation

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Форматы дат, которые принимаются во входящих запросах (подмножество ISO 8601).
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTime разбирает дату в одном из поддерживаемых ISO 8601 форматов.
// Значения без часового пояса трактуются как UTC.
func ParseTime(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%q is not a valid ISO 8601 date", raw)
}

func IsDateString(raw string) bool {
	_, err := ParseTime(raw)
	return err == nil
}

func IsUUID(raw string) bool {
	return validate.Var(raw, "required,uuid") == nil
}

func IsEmail(raw string) bool {
	return validate.Var(raw, "required,email") == nil
}

func IsNotEmpty(raw string) bool {
	return raw != ""
}

// MinLength считает длину в символах, а не в байтах.
func MinLength(raw string, n int) bool {
	return utf8.RuneCountInString(raw) >= n
}

func IsEnum(raw string, allowed []string) bool {
	for _, a := range allowed {
		if raw == a {
			return true
		}
	}
	return false
}

// IsAfter проверяет, что значение поля field строго позже значения поля related.
// Если хотя бы одно значение не передано, проверка пропускается.
// Если хотя бы одно значение не разбирается как дата, возвращается ошибка формата.
func IsAfter(field string, value *string, related string, relatedValue *string) *FieldError {
	if value == nil || relatedValue == nil || *value == "" || *relatedValue == "" {
		return nil
	}

	t, err := ParseTime(*value)
	if err != nil {
		return &FieldError{Field: field, Message: fmt.Sprintf("%s and %s must be valid date strings to be compared", field, related)}
	}
	rt, err := ParseTime(*relatedValue)
	if err != nil {
		return &FieldError{Field: field, Message: fmt.Sprintf("%s and %s must be valid date strings to be compared", field, related)}
	}

	if !t.After(rt) {
		return &FieldError{Field: field, Message: fmt.Sprintf("%s must be after %s", field, related)}
	}
	return nil
}
