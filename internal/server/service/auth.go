package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-notekeeper/internal/server/config"
	"github.com/IvanChernomyrdin/go-notekeeper/internal/server/crypto"
	serr "github.com/IvanChernomyrdin/go-notekeeper/internal/shared/errors"
)

// AuthService реализует бизнес-логику аутентификации.
//
// Ответственность:
//   - регистрация пользователей (хэширование пароля, валидация)
//   - аутентификация (логин) и выпуск access токена
//
// Токен stateless: сервис его только выпускает, проверка живёт
// в middleware и не требует обращений к хранилищу. Отозвать токен
// до истечения TTL нельзя — это осознанное ограничение, а не баг.
type AuthService struct {
	users UsersRepo

	pass crypto.Argon2Params
	jwt  crypto.JWTConfig

	// dummyHash — заранее посчитанный хэш случайного пароля.
	// Если email не найден, проверяем присланный пароль против него:
	// стоимость ответа та же, что и при неверном пароле,
	// и по времени нельзя понять, существует ли email.
	dummyHash string
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(users UsersRepo, cfg *config.Config) *AuthService {
	pass := crypto.Argon2Params{
		Time:      cfg.Password.Argon2.Time,
		MemoryKiB: cfg.Password.Argon2.MemoryKiB,
		Threads:   cfg.Password.Argon2.Threads,
		KeyLen:    cfg.Password.Argon2.KeyLen,
		SaltLen:   cfg.Password.Argon2.SaltLen,
	}

	dummy, err := crypto.HashPassword(uuid.NewString(), pass)
	if err != nil {
		// HashPassword падает только на пустом пароле или отказе ГСЧ
		dummy = ""
	}

	return &AuthService{
		users: users,

		pass: pass,
		jwt: crypto.JWTConfig{
			Issuer:     cfg.Auth.Issuer,
			Audience:   cfg.Auth.Audience,
			SigningKey: cfg.Auth.JWT.SigningKey,
			AccessTTL:  cfg.Auth.AccessTTL,
		},

		dummyHash: dummy,
	}
}

// Register регистрирует нового пользователя.
//
// Валидация:
//   - email обязателен и должен быть валидным
//   - пароль обязателен и длиной >= 8 символов
//
// Возвращает:
//   - id пользователя
//   - ErrInvalidInput при некорректных данных или ErrAlreadyExists если email уже зарегистрирован
func (s *AuthService) Register(ctx context.Context, email, password string) (uuid.UUID, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	password = strings.TrimSpace(password)

	if email == "" || password == "" || !regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`).MatchString(email) || len(password) < 8 {
		return uuid.Nil, serr.ErrInvalidInput
	}

	hash, err := crypto.HashPassword(password, s.pass)
	if err != nil {
		return uuid.Nil, serr.ErrInternal
	}
	return s.users.Create(ctx, email, hash)
}

// Login аутентифицирует пользователя и выдаёт access токен.
//
// Поведение:
//   - не раскрывает факт существования email: и для неизвестного email,
//     и для неверного пароля возвращается одинаковая ErrInvalidCredentials,
//     причём в обоих случаях выполняется проверка хэша (одинаковая стоимость)
//
// Ошибки:
//   - ErrInvalidInput
//   - ErrInvalidCredentials
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return "", serr.ErrInvalidInput
	}
	// получаем юзера по email
	userID, hash, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			// не палим существование email: прогоняем argon2 вхолостую
			if s.dummyHash != "" {
				crypto.VerifyPassword(password, s.dummyHash)
			}
			return "", serr.ErrInvalidCredentials
		}
		return "", err
	}
	// проверяем пароль
	ok, err := crypto.VerifyPassword(password, hash)
	if err != nil {
		return "", serr.ErrInternal
	}
	if !ok {
		return "", serr.ErrInvalidCredentials
	}
	// выпускаем access токен
	access, err := crypto.NewAccessToken(userID.String(), s.jwt)
	if err != nil {
		return "", serr.ErrInternal
	}

	return access, nil
}
