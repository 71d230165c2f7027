package cmd

import (
	"errors"

	"github.com/chat-client/v2/internal/auth"
	"github.com/chat-client/v2/ui"
	"github.com/spf13/cobra"
)

func newLoginCmd(flags *globalFlags) *cobra.Command {
	var creds auth.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the returned token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := auth.Validate(creds); err != nil {
				return err
			}

			cfg, store, svc, err := flags.deps()
			if err != nil {
				return err
			}
			defer store.Close()

			page := &consolePage{out: cmd.OutOrStdout()}
			form := flagForm{
				auth.FieldUsername: creds.Username,
				auth.FieldPassword: creds.Password,
			}
			ui.NewLoginHandler(svc, store, page, cfg.PostLoginPath).Handle(cmd.Context(), ui.NoDefault, form)

			if page.navigated == "" {
				return errors.New("login failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&creds.Username, "username", "u", "", "username or email")
	cmd.Flags().StringVarP(&creds.Password, "password", "p", "", "password")
	return cmd
}
