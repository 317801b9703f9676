// Package cli реализует командный интерфейс (CLI) клиентского приложения notekeeper.
//
// Пакет отвечает за:
//   - определение root-команды и набора подкоманд;
//   - разбор аргументов и флагов командной строки;
//   - загрузку сохранённого access токена из локального файла;
//   - выполнение команд и вывод результата пользователю.
//
// Точка входа пакета — функция Execute.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-notekeeper/internal/agent/api"
	"github.com/IvanChernomyrdin/go-notekeeper/internal/agent/config"
)

// App содержит состояние CLI-приложения, разделяемое между командами.
//
// В структуре хранятся параметры подключения к серверу и загруженный токен.
// Экземпляр App создаётся при построении root-команды и передаётся в подкоманды.
type App struct {
	// ServerURL — базовый URL сервера notekeeper (например, "https://127.0.0.1:8080").
	ServerURL string

	// CredsPath — путь к файлу с сохранённым access токеном.
	CredsPath string
	// Creds — загруженные учётные данные из локального файла.
	Creds config.Credentials
}

// requireToken проверяет, что пользователь залогинен.
func (app *App) requireToken() error {
	if app.Creds.Token == "" {
		return fmt.Errorf("no token, run: notekeeper login")
	}
	return nil
}

// clearStaleToken сбрасывает сохранённый токен, если сервер ответил 401.
//
// Токен не отзывается сервером: единственный способ узнать,
// что он протух — получить отказ. После сброса пользователю предлагается
// выполнить login заново. Исходная ошибка возвращается как есть.
func (app *App) clearStaleToken(cmd *cobra.Command, err error) error {
	if err == nil || !api.IsUnauthorized(err) {
		return err
	}

	app.Creds.Token = ""
	if rmErr := config.Clear(app.CredsPath); rmErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "failed to clear saved token: %v\n", rmErr)
	} else {
		fmt.Fprintln(cmd.ErrOrStderr(), "saved token rejected by server and cleared; run: notekeeper login")
	}
	return err
}

// NewRootCmd создаёт root-команду CLI и регистрирует подкоманды.
//
// buildVersion и buildDate используются для вывода информации о сборке (команда version).
// В PersistentPreRunE выполняется инициализация состояния приложения:
// определяется путь к файлу учётных данных и загружается сохранённый токен.
func NewRootCmd(buildVersion, buildDate string) *cobra.Command {
	app := &App{
		ServerURL: "https://127.0.0.1:8080",
	}

	cmd := &cobra.Command{
		Use:   "notekeeper",
		Short: "notekeeper CLI — заметки и профиль пользователя",
		Long: `notekeeper CLI.

Команды:
  register        Регистрация нового пользователя
  login           Вход (получить access токен)
  logout          Выход (удалить сохранённый токен)
  profile         Показать профиль
  profile-update  Обновить поля профиля
  account-delete  Удалить аккаунт вместе с заметками
  list            Список заметок (с поиском по подстроке)
  create          Создать заметку
  update          Обновить заметку
  delete          Удалить заметку
  version         Версия и дата сборки

Примеры:

Регистрация:
  notekeeper register --email test@example.com --password StrongPass123

Логин:
  notekeeper login --email test@example.com
  (пароль запрашивается скрытым вводом, токен сохраняется локально)

Заметки:
  notekeeper create --title "groceries" --content "milk, bread"
  notekeeper list --query milk
`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.DefaultPath()
			if err != nil {
				return err
			}
			app.CredsPath = p

			creds, err := config.Load(app.CredsPath)
			if err != nil {
				return err
			}
			app.Creds = creds
			return nil
		},
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&app.ServerURL, "server", "https://127.0.0.1:8080", "server base URL")

	cmd.AddCommand(NewRegisterCmd(app))
	cmd.AddCommand(NewLoginCmd(app))
	cmd.AddCommand(NewLogoutCmd(app))
	cmd.AddCommand(NewProfileCmd(app))
	cmd.AddCommand(NewProfileUpdateCmd(app))
	cmd.AddCommand(NewAccountDeleteCmd(app))
	cmd.AddCommand(NewNoteListCmd(app))
	cmd.AddCommand(NewNoteCreateCmd(app))
	cmd.AddCommand(NewNoteUpdateCmd(app))
	cmd.AddCommand(NewNoteDeleteCmd(app))
	cmd.AddCommand(NewVersionCmd(buildVersion, buildDate))

	return cmd
}

// Execute запускает обработку CLI-команд.
//
// При ошибке выполнения команды сообщение выводится в stderr, после чего процесс
// завершается с кодом 1 (os.Exit(1)).
func Execute(buildVersion, buildDate string) {
	if err := NewRootCmd(buildVersion, buildDate).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
