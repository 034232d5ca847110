package users

import (
	"context"
	"fmt"
	"time"

	"github.com/Musicweekchops/admitio-frontend-v3/pkg/sdk"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	updateName  string
	updateEmail string
	updateRole  string
)

var updateCmd = &cobra.Command{
	Use:   "update <user-id>",
	Short: "Update an institution user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		admitioClient, err := apiClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		user, err := admitioClient.UpdateUser(ctx, args[0], sdk.UserInput{
			Name:  updateName,
			Email: updateEmail,
			Role:  sdk.Role(updateRole),
		})
		if err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}

		pterm.Success.Printf("Updated user %s (%s)\n", user.DisplayName, user.Role)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateName, "name", "", "Display name (required)")
	updateCmd.Flags().StringVar(&updateEmail, "email", "", "Login email (required)")
	updateCmd.Flags().StringVar(&updateRole, "role", "", "Role: asistente, encargado, or keymaster (required)")
	updateCmd.MarkFlagRequired("name")
	updateCmd.MarkFlagRequired("email")
	updateCmd.MarkFlagRequired("role")
}
