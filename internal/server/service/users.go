package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-notekeeper/internal/server/models"
	sharedModels "github.com/IvanChernomyrdin/go-notekeeper/internal/shared/models"
)

// UsersService реализует бизнес-логику работы с профилем пользователя.
//
// Email и пароль через профиль не меняются; хэш пароля наружу не отдаётся —
// сервис конвертирует серверную модель в wire-модель Profile без него.
type UsersService struct {
	users UsersRepo
}

// NewUsersService создаёт новый UsersService.
func NewUsersService(users UsersRepo) *UsersService {
	return &UsersService{users: users}
}

// toProfile отбрасывает учётные данные из серверной модели.
func toProfile(u models.User) sharedModels.Profile {
	return sharedModels.Profile{
		ID:        u.ID.String(),
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Bio:       u.Bio,
		Phone:     u.Phone,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}

// Profile возвращает профиль пользователя.
//
// Ошибки:
//   - ErrNotFound — пользователь удалён/не существует
func (s *UsersService) Profile(ctx context.Context, userID uuid.UUID) (sharedModels.Profile, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return sharedModels.Profile{}, err
	}
	return toProfile(u), nil
}

// UpdateProfile обновляет поля профиля и возвращает новое состояние.
//
// Поля запроса — указатели: незаданные поля остаются как были.
// Идентичность (email) и пароль этим эндпоинтом не меняются.
//
// Ошибки:
//   - ErrNotFound
func (s *UsersService) UpdateProfile(ctx context.Context, userID uuid.UUID, req sharedModels.UpdateProfileRequest) (sharedModels.Profile, error) {
	current, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return sharedModels.Profile{}, err
	}

	firstName := current.FirstName
	lastName := current.LastName
	bio := current.Bio
	phone := current.Phone
	avatarURL := current.AvatarURL

	if req.FirstName != nil {
		firstName = *req.FirstName
	}
	if req.LastName != nil {
		lastName = *req.LastName
	}
	if req.Bio != nil {
		bio = *req.Bio
	}
	if req.Phone != nil {
		phone = *req.Phone
	}
	if req.AvatarURL != nil {
		avatarURL = *req.AvatarURL
	}

	u, err := s.users.UpdateProfile(ctx, userID, firstName, lastName, bio, phone, avatarURL)
	if err != nil {
		return sharedModels.Profile{}, err
	}
	return toProfile(u), nil
}

// DeleteAccount удаляет аккаунт пользователя.
// Заметки пользователя удаляются каскадно на уровне схемы БД.
//
// Ошибки:
//   - ErrNotFound
func (s *UsersService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	return s.users.Delete(ctx, userID)
}
