package leads

import (
	"context"
	"fmt"

	"github.com/Musicweekchops/admitio-frontend-v3/cmd/admitioctl/internal/config"
	"github.com/Musicweekchops/admitio-frontend-v3/pkg/sdk"
	"github.com/spf13/cobra"
)

// LeadsCmd is the parent command for lead operations
var LeadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "Manage admission leads",
	Long:  `Commands for tracking prospective students through the admissions pipeline.`,
}

func init() {
	// Add subcommands (defined in separate files)
	LeadsCmd.AddCommand(listCmd)
	LeadsCmd.AddCommand(statsCmd)
	LeadsCmd.AddCommand(getCmd)
	LeadsCmd.AddCommand(createCmd)
	LeadsCmd.AddCommand(updateCmd)
	LeadsCmd.AddCommand(contactCmd)
	LeadsCmd.AddCommand(archiveCmd)
	LeadsCmd.AddCommand(unarchiveCmd)
	LeadsCmd.AddCommand(careersCmd)
	LeadsCmd.AddCommand(sourcesCmd)
}

// apiClient returns an authenticated client after checking that the session
// may reach the institution dashboard at all.
func apiClient(ctx context.Context) (*sdk.Client, error) {
	cfg := config.MustFromContext(ctx)

	session := cfg.ClientProvider.Session(ctx).Snapshot()
	switch session.Route() {
	case sdk.RouteTenantDashboard:
	case sdk.RoutePasswordChange:
		return nil, fmt.Errorf("password change required: run `admitioctl auth passwd` first")
	case sdk.RoutePublic:
		return nil, fmt.Errorf("not logged in; please run `admitioctl auth login`")
	default:
		return nil, fmt.Errorf("lead commands need an institution session (impersonate a tenant user first)")
	}

	return cfg.ClientProvider.APIClient(ctx)
}
