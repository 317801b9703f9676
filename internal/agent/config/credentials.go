// Package config хранит локальные учётные данные агента.
//
// Токен доступа сохраняется в JSON-файле в домашнем каталоге пользователя
// (~/.notekeeper/credentials.json). Каталог создаётся с правами 0700,
// файл — 0600: токен эквивалентен паролю на время жизни и не должен быть
// читаем другими пользователями системы.
package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Credentials — сохранённые учётные данные агента.
type Credentials struct {
	Token string `json:"token"`
}

// DefaultPath возвращает путь к файлу с учётными данными по умолчанию.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".notekeeper", "credentials.json"), nil
}

// Load читает учётные данные из файла path.
// Отсутствующий файл не ошибка: возвращаются пустые Credentials.
func Load(path string) (Credentials, error) {
	var creds Credentials

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return creds, nil
		}
		return creds, err
	}

	if err := json.Unmarshal(raw, &creds); err != nil {
		return Credentials{}, err
	}
	return creds, nil
}

// Save записывает учётные данные в файл path, создавая каталог при необходимости.
func Save(path string, creds Credentials) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	raw, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}

// Clear удаляет файл с учётными данными. Отсутствующий файл не ошибка.
func Clear(path string) error {
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
