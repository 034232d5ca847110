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
	createName  string
	createEmail string
	createRole  string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an institution user",
	Long: `Creates a staff account. The server issues a temporary password and the
new account must change it on first login.`,
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		admitioClient, err := apiClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		user, err := admitioClient.CreateUser(ctx, sdk.UserInput{
			Name:  createName,
			Email: createEmail,
			Role:  sdk.Role(createRole),
		})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		pterm.Success.Printf("Created user %s (%s) as %s\n", user.DisplayName, user.Email, user.Role)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "Display name (required)")
	createCmd.Flags().StringVar(&createEmail, "email", "", "Login email (required)")
	createCmd.Flags().StringVar(&createRole, "role", "asistente", "Role: asistente, encargado, or keymaster")
	createCmd.MarkFlagRequired("name")
	createCmd.MarkFlagRequired("email")
}
