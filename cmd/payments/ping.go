package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func pingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Run the store self-test and report the session user",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer a.Close()

			u := a.session.User()
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s (id %d, access %d, super user %t)\n",
				u.DisplayName, u.UserID, u.AccessType, u.IsSuperUser)
			return nil
		},
	}
}
