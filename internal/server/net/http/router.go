// Package http реализует маршрутизацию HTTP-слоя сервера notekeeper.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - логирование выполнения HTTP-запросов;
//   - выполняет проверку JWT access-токенов;
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/IvanChernomyrdin/go-notekeeper/internal/server/api"
	"github.com/IvanChernomyrdin/go-notekeeper/internal/server/middleware"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - публичные эндпоинты аутентификации под префиксом /api/users;
//   - middleware логирования для всех запросов;
//   - группу защищённых JWT эндпоинтов (профиль и заметки).
func NewRouter(h *api.Handler) http.Handler {
	r := chi.NewRouter()
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware())

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	// Публичные пути
	r.Route("/api/users", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)

		// защищённый профиль
		r.Group(func(r chi.Router) {
			r.Use(h.Verifier.AuthMiddleware())
			r.Get("/profile", h.GetProfile)       // профиль без хэша пароля
			r.Put("/profile", h.UpdateProfile)    // обновление полей профиля
			r.Delete("/profile", h.DeleteProfile) // удаление аккаунта + каскад заметок
		})
	})
	// защищены пути
	r.Group(func(r chi.Router) {
		// проверка access токена
		r.Use(h.Verifier.AuthMiddleware())
		// CRUD запросы для заметок
		r.Route("/api/notes", func(r chi.Router) {
			r.Get("/", h.ListNotes)          // все заметки пользователя (?q= поиск)
			r.Post("/", h.CreateNote)        // создание заметки
			r.Put("/{id}", h.UpdateNote)     // обновляем, id в параметрах, данные в теле
			r.Delete("/{id}", h.DeleteNote)  // удаляем заметку по id
		})
	})

	return r
}
