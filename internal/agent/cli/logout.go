package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-notekeeper/internal/agent/config"
)

// NewLogoutCmd создаёт CLI-команду для выхода пользователя.
//
// Сервер не хранит сессий и не умеет отзывать выданные токены, поэтому
// «выход» — чисто клиентская операция: удаляется локальный файл с токеном.
// Уже выданный токен остаётся валидным до истечения срока действия.
//
// Пример использования:
//
//	notekeeper logout
func NewLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "logout",
		Short:        "Выход (удалить сохранённый токен)",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Clear(app.CredsPath); err != nil {
				return err
			}
			app.Creds.Token = ""

			fmt.Fprintln(cmd.OutOrStdout(), "logged out (token removed)")
			return nil
		},
	}
}
