package domain

import (
	"time"

	"github.com/google/uuid"
)

// User представляет пользователя системы бронирования.
// Соответствует таблице users в базе данных.
// Пароль хранится только в виде bcrypt-хэша и никогда не сериализуется в JSON.
type User struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	Email        string    `json:"email" db:"email" gorm:"uniqueIndex;not null"`
	Name         string    `json:"name" db:"name" gorm:"not null"`
	PasswordHash string    `json:"-" db:"password_hash" gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
