package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-notekeeper/internal/server/middleware"
	serr "github.com/IvanChernomyrdin/go-notekeeper/internal/shared/errors"
	sharedModels "github.com/IvanChernomyrdin/go-notekeeper/internal/shared/models"
)

// userIDFromRequest достаёт userID, привязанный middleware-ом, и парсит его в UUID.
// Идентичность привязывается один раз на запрос и дальше не меняется.
func userIDFromRequest(r *http.Request) (uuid.UUID, bool) {
	s, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// GetProfile возвращает профиль аутентифицированного пользователя.
//
// Хэш пароля в ответе отсутствует всегда.
//
// @Summary      Get profile
// @Description  Returns the authenticated user's profile (without credentials).
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.Profile
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      404 {object} ErrorResponse "Not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/users/profile [get]
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	profile, err := h.Svc.Users.Profile(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, serr.ErrNotFound)
		default:
			h.Log.Logger.Sugar().Errorw("get profile failed", "user_id", userID.String())
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, profile)
}

// UpdateProfile обновляет поля профиля аутентифицированного пользователя.
//
// Email и пароль через этот эндпоинт не меняются; незаданные поля
// остаются как были.
//
// @Summary      Update profile
// @Description  Updates profile fields; email and password are immutable here.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.UpdateProfileRequest true "Profile fields"
// @Success      200 {object} models.Profile
// @Failure      400 {object} ErrorResponse "Bad JSON"
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      404 {object} ErrorResponse "Not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/users/profile [put]
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	var req sharedModels.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	profile, err := h.Svc.Users.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, serr.ErrNotFound)
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		default:
			h.Log.Logger.Sugar().Errorw("update profile failed", "user_id", userID.String())
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, profile)
}

// DeleteProfile удаляет аккаунт аутентифицированного пользователя.
//
// Вместе с аккаунтом каскадно удаляются все его заметки.
// Выданный токен при этом продолжит проходить подпись до истечения TTL,
// но все защищённые ручки начнут отвечать 404 — пользователя больше нет.
//
// @Summary      Delete account
// @Description  Deletes the authenticated user's account and all owned notes.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.MessageResponse
// @Failure      401 {object} ErrorResponse "Unauthorized"
// @Failure      404 {object} ErrorResponse "Not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/users/profile [delete]
func (h *Handler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	if err := h.Svc.Users.DeleteAccount(r.Context(), userID); err != nil {
		switch {
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, serr.ErrNotFound)
		default:
			h.Log.Logger.Sugar().Errorw("delete account failed", "user_id", userID.String())
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, sharedModels.MessageResponse{Message: "account deleted"})
}
