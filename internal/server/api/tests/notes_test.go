package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"

	serr "github.com/IvanChernomyrdin/go-notekeeper/internal/shared/errors"
	sharedModels "github.com/IvanChernomyrdin/go-notekeeper/internal/shared/models"
)

// добавляем url-параметр {id} так, как его увидел бы chi-роутер
func withChiParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestHandler_ListNotes_OK(t *testing.T) {
	t.Parallel()

	h, _, notes := NewTestHandler(t)

	userID := uuid.New()
	now := time.Now()

	notes.EXPECT().
		ListByUser(gomock.Any(), userID, "").
		Return([]sharedModels.Note{
			{ID: uuid.NewString(), Title: "second", Content: "b", CreatedAt: now, UpdatedAt: now},
			{ID: uuid.NewString(), Title: "first", Content: "a", CreatedAt: now.Add(-time.Hour), UpdatedAt: now.Add(-time.Hour)},
		}, nil)

	req := authedRequest(http.MethodGet, "/api/notes", nil, userID)
	rec := httptest.NewRecorder()

	h.ListNotes(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusOK, rec.Code, rec.Body.String())
	}

	var got []sharedModels.Note
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 2 || got[0].Title != "second" {
		t.Fatalf("unexpected notes: %+v", got)
	}
}

// Пустой список сериализуется как [], не null
func TestHandler_ListNotes_Empty(t *testing.T) {
	t.Parallel()

	h, _, notes := NewTestHandler(t)

	userID := uuid.New()

	notes.EXPECT().
		ListByUser(gomock.Any(), userID, "").
		Return([]sharedModels.Note{}, nil)

	req := authedRequest(http.MethodGet, "/api/notes", nil, userID)
	rec := httptest.NewRecorder()

	h.ListNotes(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
	body := rec.Body.String()
	if body == "null\n" || body == "null" {
		t.Fatal("expected [], got null")
	}
}

// ?q= прокидывается до репозитория
func TestHandler_ListNotes_Query(t *testing.T) {
	t.Parallel()

	h, _, notes := NewTestHandler(t)

	userID := uuid.New()

	notes.EXPECT().
		ListByUser(gomock.Any(), userID, "milk").
		Return([]sharedModels.Note{}, nil)

	req := authedRequest(http.MethodGet, "/api/notes?q=milk", nil, userID)
	rec := httptest.NewRecorder()

	h.ListNotes(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestHandler_CreateNote_OK(t *testing.T) {
	t.Parallel()

	h, _, notes := NewTestHandler(t)

	userID := uuid.New()
	noteID := uuid.NewString()
	now := time.Now()

	notes.EXPECT().
		Create(gomock.Any(), userID, "title", "content").
		Return(sharedModels.Note{ID: noteID, Title: "title", Content: "content", CreatedAt: now, UpdatedAt: now}, nil)

	body, _ := json.Marshal(sharedModels.CreateNoteRequest{Title: "title", Content: "content"})
	req := authedRequest(http.MethodPost, "/api/notes", body, userID)
	rec := httptest.NewRecorder()

	h.CreateNote(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusCreated, rec.Code, rec.Body.String())
	}

	var n sharedModels.Note
	if err := json.NewDecoder(rec.Body).Decode(&n); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if n.ID != noteID {
		t.Fatalf("unexpected note id: %q", n.ID)
	}
}

func TestHandler_CreateNote_EmptyTitle(t *testing.T) {
	t.Parallel()

	h, _, _ := NewTestHandler(t)

	body, _ := json.Marshal(sharedModels.CreateNoteRequest{Title: "  ", Content: "content"})
	req := authedRequest(http.MethodPost, "/api/notes", body, uuid.New())
	rec := httptest.NewRecorder()

	h.CreateNote(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandler_UpdateNote_OK(t *testing.T) {
	t.Parallel()

	h, _, notes := NewTestHandler(t)

	userID := uuid.New()
	noteID := uuid.New()
	now := time.Now()

	notes.EXPECT().
		Update(gomock.Any(), userID, noteID, "new", "text").
		Return(sharedModels.Note{ID: noteID.String(), Title: "new", Content: "text", UpdatedAt: now}, nil)

	body, _ := json.Marshal(sharedModels.UpdateNoteRequest{Title: "new", Content: "text"})
	req := authedRequest(http.MethodPut, "/api/notes/"+noteID.String(), body, userID)
	req = withChiParam(req, "id", noteID.String())
	rec := httptest.NewRecorder()

	h.UpdateNote(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d, body=%q", http.StatusOK, rec.Code, rec.Body.String())
	}
}

// Некорректный UUID в пути — 400
func TestHandler_UpdateNote_BadID(t *testing.T) {
	t.Parallel()

	h, _, _ := NewTestHandler(t)

	body, _ := json.Marshal(sharedModels.UpdateNoteRequest{Title: "t", Content: "c"})
	req := authedRequest(http.MethodPut, "/api/notes/not-a-uuid", body, uuid.New())
	req = withChiParam(req, "id", "not-a-uuid")
	rec := httptest.NewRecorder()

	h.UpdateNote(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

// Чужая заметка — 404, как и несуществующая
func TestHandler_UpdateNote_NotOwned(t *testing.T) {
	t.Parallel()

	h, _, notes := NewTestHandler(t)

	userID := uuid.New()
	noteID := uuid.New()

	notes.EXPECT().
		Update(gomock.Any(), userID, noteID, "t", "c").
		Return(sharedModels.Note{}, serr.ErrNotFound)

	body, _ := json.Marshal(sharedModels.UpdateNoteRequest{Title: "t", Content: "c"})
	req := authedRequest(http.MethodPut, "/api/notes/"+noteID.String(), body, userID)
	req = withChiParam(req, "id", noteID.String())
	rec := httptest.NewRecorder()

	h.UpdateNote(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestHandler_DeleteNote_OK(t *testing.T) {
	t.Parallel()

	h, _, notes := NewTestHandler(t)

	userID := uuid.New()
	noteID := uuid.New()

	notes.EXPECT().
		Delete(gomock.Any(), userID, noteID).
		Return(nil)

	req := authedRequest(http.MethodDelete, "/api/notes/"+noteID.String(), nil, userID)
	req = withChiParam(req, "id", noteID.String())
	rec := httptest.NewRecorder()

	h.DeleteNote(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestHandler_DeleteNote_NotOwned(t *testing.T) {
	t.Parallel()

	h, _, notes := NewTestHandler(t)

	userID := uuid.New()
	noteID := uuid.New()

	notes.EXPECT().
		Delete(gomock.Any(), userID, noteID).
		Return(serr.ErrNotFound)

	req := authedRequest(http.MethodDelete, "/api/notes/"+noteID.String(), nil, userID)
	req = withChiParam(req, "id", noteID.String())
	rec := httptest.NewRecorder()

	h.DeleteNote(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, rec.Code)
	}
}
