package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	serr "github.com/IvanChernomyrdin/go-notekeeper/internal/shared/errors"
	sharedModels "github.com/IvanChernomyrdin/go-notekeeper/internal/shared/models"
)

// NotesRepository реализует доступ к хранилищу заметок (PostgreSQL).
// Отвечает исключительно за сохранение и извлечение данных без бизнес-логики.
//
// Каждый запрос на чтение/изменение дополнительно фильтруется по user_id:
// чужую заметку нельзя ни прочитать, ни изменить, ни удалить —
// для вызывающего она неотличима от несуществующей.
type NotesRepository struct {
	db *sql.DB
}

// NewNotesRepository создаёт новый экземпляр NotesRepository.
func NewNotesRepository(db *sql.DB) *NotesRepository {
	return &NotesRepository{db: db}
}

// Create сохраняет новую заметку пользователя.
//
// Владелец проставляется из аргумента userID (из контекста запроса),
// что бы ни пришло в теле запроса.
func (r *NotesRepository) Create(
	ctx context.Context,
	userID uuid.UUID,
	title, content string,
) (sharedModels.Note, error) {
	var (
		id        uuid.UUID
		createdAt time.Time
		updatedAt time.Time
	)

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO notes (user_id, title, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`,
		userID, title, content,
	).Scan(&id, &createdAt, &updatedAt)

	if err != nil {
		return sharedModels.Note{}, serr.ErrInternal
	}

	return sharedModels.Note{
		ID:        id.String(),
		Title:     title,
		Content:   content,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

// ListByUser возвращает все заметки пользователя, новые сверху.
//
// Если query непустой — фильтрует по вхождению в заголовок или текст
// (регистронезависимо, ILIKE).
func (r *NotesRepository) ListByUser(ctx context.Context, userID uuid.UUID, query string) ([]sharedModels.Note, error) {
	var (
		rows *sql.Rows
		err  error
	)

	if query == "" {
		rows, err = r.db.QueryContext(ctx, `
			SELECT id, title, content, created_at, updated_at
			  FROM notes
			 WHERE user_id=$1
			 ORDER BY created_at DESC
		`, userID)
	} else {
		rows, err = r.db.QueryContext(ctx, `
			SELECT id, title, content, created_at, updated_at
			  FROM notes
			 WHERE user_id=$1
			   AND (title ILIKE '%'||$2||'%' OR content ILIKE '%'||$2||'%')
			 ORDER BY created_at DESC
		`, userID, query)
	}
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	notes := make([]sharedModels.Note, 0)
	for rows.Next() {
		var (
			id uuid.UUID
			n  sharedModels.Note
		)
		if err := rows.Scan(&id, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, serr.ErrInternal
		}
		n.ID = id.String()
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}

	return notes, nil
}

// Update полностью обновляет заметку пользователя и возвращает её новое состояние.
//
// Возвращает ErrNotFound, если заметки нет либо она принадлежит другому
// пользователю (различие наружу не раскрывается).
func (r *NotesRepository) Update(
	ctx context.Context,
	userID, noteID uuid.UUID,
	title, content string,
) (sharedModels.Note, error) {
	var (
		createdAt time.Time
		updatedAt time.Time
	)

	err := r.db.QueryRowContext(ctx, `
		UPDATE notes
		   SET title=$3, content=$4, updated_at=now()
		 WHERE id=$2 AND user_id=$1
		 RETURNING created_at, updated_at
	`,
		userID, noteID, title, content,
	).Scan(&createdAt, &updatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return sharedModels.Note{}, serr.ErrNotFound
		}
		return sharedModels.Note{}, serr.ErrInternal
	}

	return sharedModels.Note{
		ID:        noteID.String(),
		Title:     title,
		Content:   content,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

// Delete удаляет заметку пользователя.
func (r *NotesRepository) Delete(ctx context.Context, userID, noteID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM notes WHERE id=$2 AND user_id=$1`,
		userID, noteID,
	)
	if err != nil {
		return serr.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		return serr.ErrInternal
	}
	if n == 0 {
		return serr.ErrNotFound
	}
	return nil
}
