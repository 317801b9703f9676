package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// NewProfileCmd создаёт CLI-команду для просмотра профиля текущего пользователя.
//
// Команда требует выполненного login. При ответе сервера 401 сохранённый
// токен сбрасывается и пользователю предлагается войти заново.
//
// Пример использования:
//
//	notekeeper profile
func NewProfileCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "profile",
		Short:        "Показать профиль текущего пользователя",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireToken(); err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			p, err := c.Profile(app.Creds.Token)
			if err != nil {
				return app.clearStaleToken(cmd, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "id:         %s\n", p.ID)
			fmt.Fprintf(out, "email:      %s\n", p.Email)
			fmt.Fprintf(out, "first_name: %s\n", p.FirstName)
			fmt.Fprintf(out, "last_name:  %s\n", p.LastName)
			fmt.Fprintf(out, "bio:        %s\n", p.Bio)
			fmt.Fprintf(out, "phone:      %s\n", p.Phone)
			fmt.Fprintf(out, "avatar_url: %s\n", p.AvatarURL)
			fmt.Fprintf(out, "created_at: %s\n", p.CreatedAt.Format(time.RFC3339))
			return nil
		},
	}
}
