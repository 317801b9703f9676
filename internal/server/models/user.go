// Серверная модель пользователя
package models

import (
	"time"

	"github.com/google/uuid"
)

// User хранит учётные данные и поля профиля.
// PasswordHash никогда не сериализуется наружу: api слой отдаёт
// клиентам только wire-модель Profile (internal/shared/models).
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Bio          string
	Phone        string
	AvatarURL    string
	CreatedAt    time.Time
}
