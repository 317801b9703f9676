package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewNoteUpdateCmd создаёт CLI-команду для обновления заметки.
//
// Обновление полное: заголовок и текст перезаписываются целиком,
// поэтому оба флага обязательны.
//
// Пример использования:
//
//	notekeeper update --id <uuid> --title "groceries" --content "milk, bread, eggs"
func NewNoteUpdateCmd(app *App) *cobra.Command {
	var id, title, content string

	cmd := &cobra.Command{
		Use:          "update",
		Short:        "Обновить заметку (заголовок и текст целиком)",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireToken(); err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			updated, err := c.UpdateNote(app.Creds.Token, id, title, content)
			if err != nil {
				return app.clearStaleToken(cmd, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "updated note %s\n", updated.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "note ID")
	cmd.Flags().StringVar(&title, "title", "", "new note title")
	cmd.Flags().StringVar(&content, "content", "", "new note content")
	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("content")

	return cmd
}
