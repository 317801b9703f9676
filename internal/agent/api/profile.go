package api

import sharedModels "github.com/IvanChernomyrdin/go-notekeeper/internal/shared/models"

// Profile запрашивает профиль текущего пользователя.
func (c *Client) Profile(token string) (sharedModels.Profile, error) {
	var resp sharedModels.Profile
	err := c.GetJSON("/api/users/profile", &resp, token)
	return resp, err
}

// UpdateProfile обновляет поля профиля. Nil-поля запроса не изменяются.
func (c *Client) UpdateProfile(token string, req sharedModels.UpdateProfileRequest) (sharedModels.Profile, error) {
	var resp sharedModels.Profile
	err := c.PutJSON("/api/users/profile", req, &resp, token)
	return resp, err
}

// DeleteAccount удаляет аккаунт текущего пользователя вместе со всеми заметками.
func (c *Client) DeleteAccount(token string) (sharedModels.MessageResponse, error) {
	var resp sharedModels.MessageResponse
	err := c.DeleteJSON("/api/users/profile", &resp, token)
	return resp, err
}
