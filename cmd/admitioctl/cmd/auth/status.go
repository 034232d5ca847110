package auth

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/Musicweekchops/admitio-frontend-v3/cmd/admitioctl/internal/config"
	"github.com/Musicweekchops/admitio-frontend-v3/pkg/sdk"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display authentication status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		manager := sessionManager(cmd)
		session := manager.Snapshot()

		pterm.DefaultSection.Println("Session Status")

		if cfg.ClientProvider.PublicClient().Health(cmd.Context()) {
			pterm.Info.Printf("Server %s is reachable\n", cfg.ServerURL)
		} else {
			pterm.Warning.Printf("Server %s is not responding\n", cfg.ServerURL)
		}

		if !session.IsAuthenticated() {
			pterm.Info.Println("Not logged in")
			if session.LastError != "" {
				pterm.Warning.Printf("Last session error: %s\n", session.LastError)
			}
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "NAME\t%s\n", session.Identity.DisplayName)
		fmt.Fprintf(w, "EMAIL\t%s\n", session.Identity.Email)
		fmt.Fprintf(w, "ROLE\t%s\n", session.Identity.Role)
		if session.Tenant != nil {
			fmt.Fprintf(w, "INSTITUTION\t%s (%s)\n", session.Tenant.Name, session.Tenant.Slug)
			fmt.Fprintf(w, "PLAN\t%s\n", session.Tenant.Plan)
		}
		fmt.Fprintf(w, "VIEW\t%s\n", session.Route())
		if info, err := sdk.InspectToken(manager.Token()); err == nil && !info.ExpiresAt.IsZero() {
			fmt.Fprintf(w, "TOKEN EXPIRES\t%s\n", info.ExpiresAt.Format(time.RFC1123))
		}
		w.Flush()

		if session.Impersonating {
			pterm.Warning.Println("This is an impersonation session: run `admitioctl admin impersonate exit` to return")
		}
		if session.MustChangePassword() {
			pterm.Warning.Println("Password change required: run `admitioctl auth passwd`")
		}
		return nil
	},
}
