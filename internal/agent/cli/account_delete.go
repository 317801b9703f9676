package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-notekeeper/internal/agent/config"
)

// NewAccountDeleteCmd создаёт CLI-команду для удаления аккаунта.
//
// Удаление необратимо: вместе с аккаунтом сервер удаляет все заметки
// пользователя. Чтобы защититься от случайного запуска, команда требует
// явный флаг --yes. После успешного удаления локальный токен стирается.
//
// Пример использования:
//
//	notekeeper account-delete --yes
func NewAccountDeleteCmd(app *App) *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:          "account-delete",
		Short:        "Удалить аккаунт вместе со всеми заметками",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireToken(); err != nil {
				return err
			}
			if !confirmed {
				return fmt.Errorf("account deletion is irreversible; pass --yes to confirm")
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.DeleteAccount(app.Creds.Token)
			if err != nil {
				return app.clearStaleToken(cmd, err)
			}

			// аккаунта больше нет — токен бесполезен
			app.Creds.Token = ""
			if err := config.Clear(app.CredsPath); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirmed, "yes", false, "confirm account deletion")

	return cmd
}
