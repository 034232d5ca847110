package admin

import (
	"context"
	"fmt"

	"github.com/Musicweekchops/admitio-frontend-v3/cmd/admitioctl/internal/config"
	"github.com/Musicweekchops/admitio-frontend-v3/pkg/sdk"
	"github.com/spf13/cobra"
)

// AdminCmd is the parent command for platform console operations
var AdminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Platform console operations",
	Long:  `Commands for platform super owners: tenant management, impersonation, and the audit log.`,
}

func init() {
	AdminCmd.AddCommand(dashboardCmd)
	AdminCmd.AddCommand(tenantsCmd)
	AdminCmd.AddCommand(ownersCmd)
	AdminCmd.AddCommand(impersonateCmd)
	AdminCmd.AddCommand(auditCmd)
}

// requireConsole checks that the session may reach the platform console.
func requireConsole(ctx context.Context) (*config.GlobalConfig, error) {
	cfg := config.MustFromContext(ctx)

	session := cfg.ClientProvider.Session(ctx).Snapshot()
	switch session.Route() {
	case sdk.RouteAdminConsole:
		return cfg, nil
	case sdk.RoutePasswordChange:
		return nil, fmt.Errorf("password change required: run `admitioctl auth passwd` first")
	case sdk.RoutePublic:
		return nil, fmt.Errorf("not logged in; please run `admitioctl auth admin-login`")
	default:
		return nil, fmt.Errorf("admin commands require a super owner session")
	}
}

func apiClient(ctx context.Context) (*sdk.Client, error) {
	cfg, err := requireConsole(ctx)
	if err != nil {
		return nil, err
	}
	return cfg.ClientProvider.APIClient(ctx)
}

// requireSupremo additionally checks for the supreme super owner role, the
// only one allowed to manage other super owners.
func requireSupremo(ctx context.Context) (*sdk.Client, error) {
	cfg, err := requireConsole(ctx)
	if err != nil {
		return nil, err
	}
	if !cfg.ClientProvider.Session(ctx).Snapshot().IsSupremo() {
		return nil, fmt.Errorf("managing super owners requires the supreme super owner role")
	}
	return cfg.ClientProvider.APIClient(ctx)
}
