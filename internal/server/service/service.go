// Package service содержит бизнес-логику приложения (notekeeper).
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-notekeeper/internal/server/config"
	"github.com/IvanChernomyrdin/go-notekeeper/internal/server/models"
	sharedModels "github.com/IvanChernomyrdin/go-notekeeper/internal/shared/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users UsersRepo
	Notes NotesRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth  *AuthService
	Users *UsersService
	Notes *NotesService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (параметры хеширования пароля и подписи токена).
func NewServices(repos Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:  NewAuthService(repos.Users, cfg),
		Users: NewUsersService(repos.Users),
		Notes: NewNotesService(repos.Notes),
	}
}

// UsersRepo — репозиторий пользователей (auth + профиль).
type UsersRepo interface {
	Create(ctx context.Context, email, passwordHash string) (uuid.UUID, error)
	GetByEmail(ctx context.Context, email string) (uuid.UUID, string, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, firstName, lastName, bio, phone, avatarURL string) (models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NotesRepo — репозиторий заметок (CRUD, всё фильтруется по владельцу).
type NotesRepo interface {
	Create(ctx context.Context, userID uuid.UUID, title, content string) (sharedModels.Note, error)
	ListByUser(ctx context.Context, userID uuid.UUID, query string) ([]sharedModels.Note, error)
	Update(ctx context.Context, userID, noteID uuid.UUID, title, content string) (sharedModels.Note, error)
	Delete(ctx context.Context, userID, noteID uuid.UUID) error
}
