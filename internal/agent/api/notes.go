package api

import (
	"net/url"

	sharedModels "github.com/IvanChernomyrdin/go-notekeeper/internal/shared/models"
)

// ListNotes возвращает заметки текущего пользователя.
// Непустой query фильтрует по подстроке в заголовке или тексте.
func (c *Client) ListNotes(token, query string) ([]sharedModels.Note, error) {
	path := "/api/notes"
	if query != "" {
		path += "?q=" + url.QueryEscape(query)
	}

	var resp []sharedModels.Note
	err := c.GetJSON(path, &resp, token)
	return resp, err
}

// CreateNote создаёт заметку и возвращает её серверное представление.
func (c *Client) CreateNote(token, title, content string) (sharedModels.Note, error) {
	var resp sharedModels.Note
	err := c.PostJSON("/api/notes", sharedModels.CreateNoteRequest{Title: title, Content: content}, &resp, token)
	return resp, err
}

// UpdateNote перезаписывает заголовок и текст заметки id.
func (c *Client) UpdateNote(token, id, title, content string) (sharedModels.Note, error) {
	var resp sharedModels.Note
	err := c.PutJSON("/api/notes/"+url.PathEscape(id), sharedModels.UpdateNoteRequest{Title: title, Content: content}, &resp, token)
	return resp, err
}

// DeleteNote удаляет заметку id.
func (c *Client) DeleteNote(token, id string) (sharedModels.MessageResponse, error) {
	var resp sharedModels.MessageResponse
	err := c.DeleteJSON("/api/notes/"+url.PathEscape(id), &resp, token)
	return resp, err
}
