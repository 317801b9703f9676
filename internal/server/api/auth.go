// HTTP-хендлеры регистрации и логина
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	serr "github.com/IvanChernomyrdin/go-notekeeper/internal/shared/errors"
	sharedModels "github.com/IvanChernomyrdin/go-notekeeper/internal/shared/models"
)

// RegisterRequest описывает тело запроса регистрации пользователя.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest описывает тело запроса входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse описывает успешный ответ входа пользователя.
type LoginResponse struct {
	Token string `json:"token"`
}

// Register обрабатывает регистрацию пользователя.
//
// Ответы:
//   - 200 OK: регистрация успешна;
//   - 400 Bad Request: неверный JSON, невалидные входные данные
//     или email уже занят;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Register user
// @Description  Registers a new user with email and password.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Register request"
// @Success      200 {object} models.MessageResponse
// @Failure      400 {object} ErrorResponse "Invalid input or email taken"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/users/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	_, err := h.Svc.Auth.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		case errors.Is(err, serr.ErrAlreadyExists):
			// занятый email — тоже 400, id проверять нечего
			WriteError(w, http.StatusBadRequest, serr.ErrAlreadyExists)
		default:
			h.Log.Logger.Sugar().Error("register failed")
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, sharedModels.MessageResponse{Message: "user registered"})
}

// Login обрабатывает вход пользователя и выдачу access токена.
//
// Ответы:
//   - 200 OK: успешный вход, в теле token;
//   - 400 Bad Request: неверный JSON, невалидные входные данные
//     или неверные учётные данные (не уточняем, что именно);
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Login user
// @Description  Authenticates a user and returns a signed bearer token.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request"
// @Success      200 {object} LoginResponse
// @Failure      400 {object} ErrorResponse "Invalid input or credentials"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/users/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	token, err := h.Svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		case errors.Is(err, serr.ErrInvalidCredentials):
			WriteError(w, http.StatusBadRequest, serr.ErrInvalidCredentials)
		default:
			h.Log.Logger.Sugar().Error("login failed")
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, LoginResponse{Token: token})
}
