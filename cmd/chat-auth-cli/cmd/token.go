package cmd

import (
	"errors"
	"fmt"

	"github.com/chat-client/v2/core"
	"github.com/chat-client/v2/internal/auth"
	"github.com/spf13/cobra"
)

func newTokenCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Print the stored auth token",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config()
			if err != nil {
				return err
			}
			store, err := core.OpenStore(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			token, err := store.GetItem(auth.TokenKey)
			if errors.Is(err, core.ErrNotFound) {
				return errors.New("no token stored, run login first")
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
}
