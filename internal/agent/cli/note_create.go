package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewNoteCreateCmd создаёт CLI-команду для создания заметки.
//
// Обязательные флаги:
//
//	--title    — заголовок заметки
//	--content  — текст заметки
//
// Пример использования:
//
//	notekeeper create --title "groceries" --content "milk, bread"
//
// В случае успеха выводится ID созданной заметки.
func NewNoteCreateCmd(app *App) *cobra.Command {
	var title, content string

	cmd := &cobra.Command{
		Use:          "create",
		Short:        "Создать заметку",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireToken(); err != nil {
				return err
			}

			c := NewAPIClient(app.ServerURL)
			created, err := c.CreateNote(app.Creds.Token, title, content)
			if err != nil {
				return app.clearStaleToken(cmd, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created note %s\n", created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "note title")
	cmd.Flags().StringVar(&content, "content", "", "note content")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("content")

	return cmd
}
