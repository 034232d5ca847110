package auth

import (
	"fmt"
	"os"

	"github.com/Musicweekchops/admitio-frontend-v3/cmd/admitioctl/internal/config"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	loginTenant   string
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to an institution",
	Long: `Authenticates with the Admitio server as an institution user.

The tenant flag takes the institution's URL slug (the same one used in the
web address). The password can be passed via --password, the
ADMITIO_PASSWORD environment variable, or an interactive prompt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		password, err := resolvePassword(cfg, loginPassword)
		if err != nil {
			return err
		}

		manager := sessionManager(cmd)
		if err := manager.Login(cmd.Context(), loginTenant, loginEmail, password); err != nil {
			return err
		}

		session := manager.Snapshot()
		pterm.Success.Printf("Logged in as %s (%s)\n", session.Identity.DisplayName, session.Identity.Role)
		if session.Tenant != nil {
			pterm.Info.Printf("Institution: %s [%s]\n", session.Tenant.Name, session.Tenant.Plan)
		}
		if session.MustChangePassword() {
			pterm.Warning.Println("Your password must be changed before continuing: run `admitioctl auth passwd`")
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginTenant, "tenant", "", "Institution URL slug (required)")
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email (required)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted if omitted)")
	loginCmd.MarkFlagRequired("tenant")
	loginCmd.MarkFlagRequired("email")
}

// resolvePassword takes the password from the flag, the environment, or an
// interactive prompt, in that order.
func resolvePassword(cfg *config.GlobalConfig, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv("ADMITIO_PASSWORD"); env != "" {
		return env, nil
	}
	if cfg.NonInteractive {
		return "", fmt.Errorf("password is required: pass --password or set ADMITIO_PASSWORD")
	}
	return pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
}
