package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewNoteDeleteCmd создаёт CLI-команду для удаления заметки.
//
// Пример использования:
//
//	notekeeper delete --id <uuid>
func NewNoteDeleteCmd(app *App) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:          "delete",
		Short:        "Удалить заметку",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireToken(); err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.DeleteNote(app.Creds.Token, id)
			if err != nil {
				return app.clearStaleToken(cmd, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "note ID")
	cmd.MarkFlagRequired("id")

	return cmd
}
