package users

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password <user-id>",
	Short: "Issue a temporary password for a user",
	Long: `Resets a user's password to a server-generated temporary value. The
user must change it on their next login.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		admitioClient, err := apiClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		result, err := admitioClient.ResetUserPassword(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to reset password: %w", err)
		}

		pterm.Success.Println("Password reset")
		fmt.Printf("Temporary password: %s\n", result.TemporaryPassword)
		pterm.Info.Println("Share it over a secure channel; it must be changed on first login")
		return nil
	},
}
