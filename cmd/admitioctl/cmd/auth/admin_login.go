package auth

import (
	"github.com/Musicweekchops/admitio-frontend-v3/cmd/admitioctl/internal/config"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	adminLoginEmail    string
	adminLoginPassword string
)

var adminLoginCmd = &cobra.Command{
	Use:   "admin-login",
	Short: "Log in to the platform console",
	Long: `Authenticates with the Admitio server as a platform super owner. No
tenant is involved; the resulting session grants access to the admin
command group.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		password, err := resolvePassword(cfg, adminLoginPassword)
		if err != nil {
			return err
		}

		manager := sessionManager(cmd)
		if err := manager.AdminLogin(cmd.Context(), adminLoginEmail, password); err != nil {
			return err
		}

		session := manager.Snapshot()
		pterm.Success.Printf("Logged in as %s (%s)\n", session.Identity.DisplayName, session.Identity.Role)
		if session.MustChangePassword() {
			pterm.Warning.Println("Your password must be changed before continuing: run `admitioctl auth passwd`")
		}
		return nil
	},
}

func init() {
	adminLoginCmd.Flags().StringVar(&adminLoginEmail, "email", "", "Super owner email (required)")
	adminLoginCmd.Flags().StringVar(&adminLoginPassword, "password", "", "Account password (prompted if omitted)")
	adminLoginCmd.MarkFlagRequired("email")
}
