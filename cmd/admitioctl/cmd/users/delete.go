package users

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <user-id>",
	Short: "Delete an institution user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		if !deleteYes {
			return fmt.Errorf("refusing to delete without --yes")
		}

		admitioClient, err := apiClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		if err := admitioClient.DeleteUser(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}

		pterm.Success.Printf("Deleted user %s\n", args[0])
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "Confirm the deletion")
}
