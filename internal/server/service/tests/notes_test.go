package tests

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-notekeeper/internal/server/service"
	"github.com/IvanChernomyrdin/go-notekeeper/internal/server/service/mocks"
	serr "github.com/IvanChernomyrdin/go-notekeeper/internal/shared/errors"
	sharedModels "github.com/IvanChernomyrdin/go-notekeeper/internal/shared/models"
)

func newNotesService(t *testing.T) (*service.NotesService, *mocks.MockNotesRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	notes := mocks.NewMockNotesRepo(ctrl)

	return service.NewNotesService(notes), notes
}

// Создание заметки
func TestNotesService_Create_OK(t *testing.T) {
	ctx := context.Background()
	svc, notes := newNotesService(t)

	userID := uuid.New()
	now := time.Now()

	notes.EXPECT().
		Create(ctx, userID, "title", "content").
		Return(sharedModels.Note{
			ID:        uuid.NewString(),
			Title:     "title",
			Content:   "content",
			CreatedAt: now,
			UpdatedAt: now,
		}, nil)

	n, err := svc.Create(ctx, userID, "  title  ", "content")

	require.NoError(t, err)
	require.Equal(t, "title", n.Title)
}

// Пустой заголовок
func TestNotesService_Create_EmptyTitle(t *testing.T) {
	ctx := context.Background()
	svc, _ := newNotesService(t)

	_, err := svc.Create(ctx, uuid.New(), "   ", "content")

	require.ErrorIs(t, err, serr.ErrInvalidInput)
}

// Пустой текст
func TestNotesService_Create_EmptyContent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newNotesService(t)

	_, err := svc.Create(ctx, uuid.New(), "title", "")

	require.ErrorIs(t, err, serr.ErrInvalidInput)
}

// Список с обрезанным query
func TestNotesService_List_TrimsQuery(t *testing.T) {
	ctx := context.Background()
	svc, notes := newNotesService(t)

	userID := uuid.New()

	notes.EXPECT().
		ListByUser(ctx, userID, "milk").
		Return([]sharedModels.Note{}, nil)

	got, err := svc.List(ctx, userID, "  milk  ")

	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got, 0)
}

// Обновление заметки
func TestNotesService_Update_OK(t *testing.T) {
	ctx := context.Background()
	svc, notes := newNotesService(t)

	userID := uuid.New()
	noteID := uuid.New()

	notes.EXPECT().
		Update(ctx, userID, noteID, "new", "text").
		Return(sharedModels.Note{ID: noteID.String(), Title: "new", Content: "text"}, nil)

	n, err := svc.Update(ctx, userID, noteID, "new", "text")

	require.NoError(t, err)
	require.Equal(t, noteID.String(), n.ID)
}

// Чужая заметка: та же ошибка, что и несуществующая
func TestNotesService_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, notes := newNotesService(t)

	userID := uuid.New()
	noteID := uuid.New()

	notes.EXPECT().
		Update(ctx, userID, noteID, "t", "c").
		Return(sharedModels.Note{}, serr.ErrNotFound)

	_, err := svc.Update(ctx, userID, noteID, "t", "c")

	require.ErrorIs(t, err, serr.ErrNotFound)
}

// Удаление чужой заметки
func TestNotesService_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, notes := newNotesService(t)

	userID := uuid.New()
	noteID := uuid.New()

	notes.EXPECT().
		Delete(ctx, userID, noteID).
		Return(serr.ErrNotFound)

	err := svc.Delete(ctx, userID, noteID)

	require.ErrorIs(t, err, serr.ErrNotFound)
}
