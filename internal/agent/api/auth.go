package api

import sharedModels "github.com/IvanChernomyrdin/go-notekeeper/internal/shared/models"

// RegisterRequest — тело запроса регистрации.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest — тело запроса входа.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse — ответ сервера на успешный вход.
type LoginResponse struct {
	Token string `json:"token"`
}

// Register регистрирует нового пользователя на сервере.
func (c *Client) Register(email, password string) (sharedModels.MessageResponse, error) {
	var resp sharedModels.MessageResponse
	err := c.PostJSON("/api/users/register", RegisterRequest{Email: email, Password: password}, &resp, "")
	return resp, err
}

// Login выполняет вход и возвращает access токен.
func (c *Client) Login(email, password string) (string, error) {
	var resp LoginResponse
	if err := c.PostJSON("/api/users/login", LoginRequest{Email: email, Password: password}, &resp, ""); err != nil {
		return "", err
	}
	return resp.Token, nil
}
