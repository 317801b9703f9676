// Package models содержит плоские wire-модели HTTP API, общие для server и agent.
//
// Сервер сериализует эти структуры в ответах, клиент (agent) использует их же
// при разборе ответов и формировании запросов. Хэш пароля в моделях отсутствует
// намеренно: он никогда не покидает сервер.
package models

import "time"

// Note — заметка пользователя, как она ходит по HTTP.
//
// Поля:
//   - ID: уникальный идентификатор заметки (UUID в виде строки)
//   - Title: заголовок заметки
//   - Content: текст заметки
//   - UpdatedAt: время последнего изменения (серверное)
//   - CreatedAt: время создания (серверное)
//
// Владелец заметки в wire-модели не передаётся: сервер сам проставляет его
// из контекста запроса и фильтрует все выборки по нему.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateNoteRequest — запрос на создание заметки.
//
// Используется в:
//   POST /api/notes
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateNoteRequest — запрос на полное обновление заметки по ID.
//
// Используется в:
//   PUT /api/notes/{id}
type UpdateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Profile — профиль пользователя без учётных данных.
//
// Используется в:
//   GET /api/users/profile
//   PUT /api/users/profile (в ответе)
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Bio       string    `json:"bio"`
	Phone     string    `json:"phone"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateProfileRequest — запрос на обновление профиля.
//
// Поля — указатели, чтобы можно было передавать только изменяемые поля
// (незаданные остаются как есть). Email и пароль через этот эндпоинт
// не меняются.
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// MessageResponse — простой ответ с человеко-читаемым сообщением.
//
// Используется в register, delete-профиля и delete-заметки.
type MessageResponse struct {
	Message string `json:"message"`
}
