package cmd

import (
	"errors"

	"github.com/chat-client/v2/internal/auth"
	"github.com/chat-client/v2/ui"
	"github.com/spf13/cobra"
)

func newRegisterCmd(flags *globalFlags) *cobra.Command {
	var data auth.RegistrationData

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and store the returned token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := auth.Validate(data); err != nil {
				return err
			}

			_, store, svc, err := flags.deps()
			if err != nil {
				return err
			}
			defer store.Close()

			page := &consolePage{out: cmd.OutOrStdout()}
			form := flagForm{
				auth.FieldFirstName: data.FirstName,
				auth.FieldLastName:  data.LastName,
				auth.FieldEmail:     data.Email,
				auth.FieldPassword:  data.Password,
			}
			ui.NewRegisterHandler(svc, store, page).Handle(cmd.Context(), ui.NoDefault, form)

			if page.last != auth.MsgRegisterSuccess {
				return errors.New("registration failed")
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&data.FirstName, "first-name", "", "first name")
	f.StringVar(&data.LastName, "last-name", "", "last name")
	f.StringVar(&data.Email, "email", "", "email address")
	f.StringVarP(&data.Password, "password", "p", "", "password")
	return cmd
}
