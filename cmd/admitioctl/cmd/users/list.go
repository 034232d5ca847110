package users

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the institution's users",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		admitioClient, err := apiClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		users, err := admitioClient.ListUsers(ctx)
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tPENDING PASSWORD CHANGE")

		for _, user := range users {
			pending := "-"
			if user.MustChangePassword {
				pending = "yes"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", user.ID, user.DisplayName, user.Email, user.Role, pending)
		}

		w.Flush()

		return nil
	},
}
