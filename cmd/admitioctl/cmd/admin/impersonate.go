package admin

import (
	"fmt"

	"github.com/Musicweekchops/admitio-frontend-v3/cmd/admitioctl/internal/config"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// impersonateCmd swaps the super owner session for a tenant user's session
// and back. The original session survives CLI restarts; every command in
// between runs exactly as the impersonated user.
var impersonateCmd = &cobra.Command{
	Use:   "impersonate <user-id>",
	Short: "Act as a tenant user",
	Long: `Starts an impersonation session for the given tenant user. Until
'impersonate exit', all commands run with that user's identity, role, and
institution. The original super owner session is kept and restored on exit,
even across CLI restarts.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cobraCmd.Context())
		manager := cfg.ClientProvider.Session(cobraCmd.Context())

		if err := manager.Impersonate(cobraCmd.Context(), args[0]); err != nil {
			return err
		}

		session := manager.Snapshot()
		pterm.Success.Printf("Now acting as %s (%s)\n", session.Identity.DisplayName, session.Identity.Role)
		if session.Tenant != nil {
			pterm.Info.Printf("Institution: %s\n", session.Tenant.Name)
		}
		pterm.Info.Println("Run `admitioctl admin impersonate exit` to return to your own session")
		return nil
	},
}

var impersonateExitCmd = &cobra.Command{
	Use:   "exit",
	Short: "End the impersonation session",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cobraCmd.Context())
		manager := cfg.ClientProvider.Session(cobraCmd.Context())

		if !manager.Snapshot().Impersonating {
			fmt.Println("Not impersonating anyone")
			return nil
		}

		if err := manager.ExitImpersonation(cobraCmd.Context()); err != nil {
			return fmt.Errorf("could not restore the original session: %w", err)
		}

		session := manager.Snapshot()
		pterm.Success.Printf("Back as %s (%s)\n", session.Identity.DisplayName, session.Identity.Role)
		return nil
	},
}

func init() {
	impersonateCmd.AddCommand(impersonateExitCmd)
}
