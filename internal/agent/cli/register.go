package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRegisterCmd создаёт CLI-команду для регистрации нового пользователя.
//
// Команда отправляет на сервер email и пароль. Пароль можно передать флагом
// --password или (безопаснее) ввести интерактивно со скрытым вводом.
// Для скриптов доступен флаг --password-stdin.
//
// Пример использования:
//
//	notekeeper register --email test@example.com
//	echo "StrongPass123" | notekeeper register --email test@example.com --password-stdin
//
// Регистрация не выполняет вход: после неё нужно выполнить login.
func NewRegisterCmd(app *App) *cobra.Command {
	var (
		email             string
		password          string
		passwordFromStdin bool
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Регистрация нового пользователя",
		Long: `Регистрация нового пользователя.

Пример:
  notekeeper register --email test@example.com
  (пароль запрашивается интерактивно со скрытым вводом)
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				pw, err := ReadPassword(cmd, passwordFromStdin)
				if err != nil {
					return err
				}
				password = pw
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.Register(email, password)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email for registration")
	cmd.Flags().StringVar(&password, "password", "", "password (omit to be prompted)")
	cmd.Flags().BoolVar(&passwordFromStdin, "password-stdin", false, "read password from STDIN (for scripts)")
	cmd.MarkFlagRequired("email")

	return cmd
}
