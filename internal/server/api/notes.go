package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	serr "github.com/IvanChernomyrdin/go-notekeeper/internal/shared/errors"
	sharedModels "github.com/IvanChernomyrdin/go-notekeeper/internal/shared/models"
)

// ListNotes возвращает все заметки текущего пользователя.
//
// Пользователь определяется по JWT-токену (middleware); чужие заметки
// в выборку не попадают никогда. Необязательный query-параметр q
// фильтрует по заголовку/тексту.
//
// @Summary      List notes
// @Description  Returns all notes belonging to the authenticated user, newest first.
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        q query string false "Filter by title/content substring"
// @Success      200 {array} models.Note
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/notes [get]
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	notes, err := h.Svc.Notes.List(r.Context(), userID, r.URL.Query().Get("q"))
	if err != nil {
		h.Log.Logger.Sugar().Errorw("list notes failed", "user_id", userID.String())
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	WriteJSON(w, http.StatusOK, notes)
}

// CreateNote создаёт новую заметку для аутентифицированного пользователя.
//
// Владелец заметки всегда берётся из контекста запроса;
// что бы клиент ни прислал в теле, это поле игнорируется.
//
// @Summary      Create note
// @Description  Creates a new note owned by the authenticated user.
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.CreateNoteRequest true "Create note request"
// @Success      201 {object} models.Note
// @Failure      400 {object} ErrorResponse "Invalid input or bad JSON"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/notes [post]
func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	var req sharedModels.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	note, err := h.Svc.Notes.Create(r.Context(), userID, req.Title, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		default:
			h.Log.Logger.Sugar().Errorw("create note failed", "user_id", userID.String())
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusCreated, note)
}

// UpdateNote полностью обновляет заметку пользователя.
//
// Идентификатор заметки передаётся в URL-параметре {id}.
// Если заметки нет или она принадлежит другому пользователю —
// возвращается 404, наружу разница не раскрывается.
//
// @Summary      Update note
// @Description  Updates a note owned by the authenticated user and returns its new state.
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path string true "Note ID (UUID)"
// @Param        request body models.UpdateNoteRequest true "Updated note data"
// @Success      200 {object} models.Note
// @Failure      400 {object} ErrorResponse "Invalid input or bad JSON"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      404 {object} ErrorResponse "Not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/notes/{id} [put]
func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	noteID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return
	}

	var req sharedModels.UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	note, err := h.Svc.Notes.Update(r.Context(), userID, noteID, req.Title, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, serr.ErrNotFound)
		default:
			h.Log.Logger.Sugar().Errorw(
				"update note failed",
				"user_id", userID.String(),
				"note_id", noteID.String(),
			)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, note)
}

// DeleteNote удаляет заметку пользователя.
//
// @Summary      Delete note
// @Description  Deletes a note owned by the authenticated user.
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Note ID (UUID)"
// @Success      200 {object} models.MessageResponse
// @Failure      400 {object} ErrorResponse "Invalid id"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      404 {object} ErrorResponse "Not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/notes/{id} [delete]
func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	noteID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return
	}

	if err := h.Svc.Notes.Delete(r.Context(), userID, noteID); err != nil {
		switch {
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, serr.ErrNotFound)
		default:
			h.Log.Logger.Sugar().Errorw(
				"delete note failed",
				"user_id", userID.String(),
				"note_id", noteID.String(),
			)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, sharedModels.MessageResponse{Message: "note deleted"})
}
