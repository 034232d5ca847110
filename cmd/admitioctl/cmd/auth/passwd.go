package auth

import (
	"fmt"

	"github.com/Musicweekchops/admitio-frontend-v3/cmd/admitioctl/internal/config"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	currentPassword string
	newPassword     string
)

var passwdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Change the account password",
	Long: `Changes the logged-in account's password on the server. When the
account was flagged for a mandatory password change (fresh accounts and
admin-issued resets), a successful change lifts the flag and unlocks the
rest of the CLI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		manager := sessionManager(cmd)
		if !manager.Snapshot().IsAuthenticated() {
			return fmt.Errorf("not logged in; please run `admitioctl auth login`")
		}

		current := currentPassword
		if current == "" {
			if cfg.NonInteractive {
				return fmt.Errorf("current password is required: pass --current")
			}
			var err error
			current, err = pterm.DefaultInteractiveTextInput.WithMask("*").Show("Current password")
			if err != nil {
				return err
			}
		}

		next := newPassword
		if next == "" {
			if cfg.NonInteractive {
				return fmt.Errorf("new password is required: pass --new")
			}
			var err error
			next, err = pterm.DefaultInteractiveTextInput.WithMask("*").Show("New password")
			if err != nil {
				return err
			}
		}

		authClient := cfg.ClientProvider.AuthClient()
		if err := authClient.ChangePassword(cmd.Context(), manager.Token(), current, next); err != nil {
			return err
		}

		manager.AcknowledgePasswordChange(cmd.Context())

		pterm.Success.Println("Password changed")
		return nil
	},
}

func init() {
	passwdCmd.Flags().StringVar(&currentPassword, "current", "", "Current password (prompted if omitted)")
	passwdCmd.Flags().StringVar(&newPassword, "new", "", "New password (prompted if omitted)")
}
