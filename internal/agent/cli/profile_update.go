package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	sharedModels "github.com/IvanChernomyrdin/go-notekeeper/internal/shared/models"
)

// NewProfileUpdateCmd создаёт CLI-команду для обновления профиля.
//
// На сервер передаются только те поля, чьи флаги были заданы явно:
// незаданный флаг оставляет поле без изменений, а заданный пустым
// значением — очищает его. Email и пароль через эту команду не меняются.
//
// Примеры использования:
//
//	notekeeper profile-update --first-name Ivan --last-name Petrov
//	notekeeper profile-update --bio ""   # очистить bio
func NewProfileUpdateCmd(app *App) *cobra.Command {
	var (
		firstName string
		lastName  string
		bio       string
		phone     string
		avatarURL string
	)

	cmd := &cobra.Command{
		Use:          "profile-update",
		Short:        "Обновить поля профиля",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireToken(); err != nil {
				return err
			}

			var req sharedModels.UpdateProfileRequest
			if cmd.Flags().Changed("first-name") {
				req.FirstName = &firstName
			}
			if cmd.Flags().Changed("last-name") {
				req.LastName = &lastName
			}
			if cmd.Flags().Changed("bio") {
				req.Bio = &bio
			}
			if cmd.Flags().Changed("phone") {
				req.Phone = &phone
			}
			if cmd.Flags().Changed("avatar-url") {
				req.AvatarURL = &avatarURL
			}

			c := NewAPIClient(app.ServerURL)
			p, err := c.UpdateProfile(app.Creds.Token, req)
			if err != nil {
				return app.clearStaleToken(cmd, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "profile updated: %s %s\n", p.FirstName, p.LastName)
			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&bio, "bio", "", "short bio")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&avatarURL, "avatar-url", "", "avatar URL")

	return cmd
}
