package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// NewNoteListCmd создаёт CLI-команду для вывода списка заметок.
//
// Без флагов выводятся все заметки текущего пользователя (новые сверху).
// Флаг --query фильтрует по подстроке в заголовке или тексте без учёта
// регистра; фильтрация выполняется на сервере.
//
// Примеры использования:
//
//	notekeeper list
//	notekeeper list --query milk
func NewNoteListCmd(app *App) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:          "list",
		Short:        "Список заметок (с поиском по подстроке)",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireToken(); err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			notes, err := c.ListNotes(app.Creds.Token, query)
			if err != nil {
				return app.clearStaleToken(cmd, err)
			}

			out := cmd.OutOrStdout()
			if len(notes) == 0 {
				fmt.Fprintln(out, "no notes")
				return nil
			}

			for _, n := range notes {
				fmt.Fprintf(out, "%s  %s  %s\n", n.ID, n.UpdatedAt.Format(time.RFC3339), n.Title)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "substring to search in title and content")

	return cmd
}
