package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	serr "github.com/IvanChernomyrdin/go-notekeeper/internal/shared/errors"
	sharedModels "github.com/IvanChernomyrdin/go-notekeeper/internal/shared/models"
)

// NotesService реализует бизнес-логику работы с заметками пользователя.
// Сервис:
//   - валидирует входные данные;
//   - всегда работает от имени переданного userID (владелец из контекста);
//   - не знает о HTTP и БД напрямую.
type NotesService struct {
	repo NotesRepo
}

// NewNotesService создаёт новый NotesService.
func NewNotesService(repo NotesRepo) *NotesService {
	return &NotesService{repo: repo}
}

// Create создаёт новую заметку пользователя.
//
// Валидации:
//   - title непустой;
//   - content непустой.
//
// Владелец проставляется из userID, поле владельца из запроса игнорируется.
//
// Ошибки:
//   - ErrInvalidInput — невалидные данные;
//   - ErrInternal — ошибка хранилища.
func (s *NotesService) Create(ctx context.Context, userID uuid.UUID, title, content string) (sharedModels.Note, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	if title == "" || content == "" {
		return sharedModels.Note{}, serr.ErrInvalidInput
	}

	return s.repo.Create(ctx, userID, title, content)
}

// List возвращает заметки пользователя, новые сверху.
// query — необязательный поисковый фильтр по заголовку/тексту.
func (s *NotesService) List(ctx context.Context, userID uuid.UUID, query string) ([]sharedModels.Note, error) {
	return s.repo.ListByUser(ctx, userID, strings.TrimSpace(query))
}

// Update полностью обновляет заметку пользователя.
//
// Ошибки:
//   - ErrInvalidInput
//   - ErrNotFound — заметки нет или она чужая (не различаем)
func (s *NotesService) Update(ctx context.Context, userID, noteID uuid.UUID, title, content string) (sharedModels.Note, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	if title == "" || content == "" {
		return sharedModels.Note{}, serr.ErrInvalidInput
	}

	return s.repo.Update(ctx, userID, noteID, title, content)
}

// Delete удаляет заметку пользователя.
//
// Ошибки:
//   - ErrNotFound — заметки нет или она чужая (не различаем)
func (s *NotesService) Delete(ctx context.Context, userID, noteID uuid.UUID) error {
	return s.repo.Delete(ctx, userID, noteID)
}
