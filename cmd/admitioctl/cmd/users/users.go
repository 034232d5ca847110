package users

import (
	"context"
	"fmt"

	"github.com/Musicweekchops/admitio-frontend-v3/cmd/admitioctl/internal/config"
	"github.com/Musicweekchops/admitio-frontend-v3/pkg/sdk"
	"github.com/spf13/cobra"
)

// UsersCmd is the parent command for institution user management
var UsersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage institution users",
	Long:  `Commands for managing an institution's staff accounts. Keymaster only.`,
}

func init() {
	UsersCmd.AddCommand(listCmd)
	UsersCmd.AddCommand(limitCmd)
	UsersCmd.AddCommand(createCmd)
	UsersCmd.AddCommand(updateCmd)
	UsersCmd.AddCommand(deleteCmd)
	UsersCmd.AddCommand(resetPasswordCmd)
}

// apiClient returns an authenticated client after checking that the session
// is allowed to manage users (keymaster, or a super owner reaching into a
// tenant).
func apiClient(ctx context.Context) (*sdk.Client, error) {
	cfg := config.MustFromContext(ctx)

	session := cfg.ClientProvider.Session(ctx).Snapshot()
	switch {
	case !session.IsAuthenticated():
		return nil, fmt.Errorf("not logged in; please run `admitioctl auth login`")
	case session.MustChangePassword():
		return nil, fmt.Errorf("password change required: run `admitioctl auth passwd` first")
	case !session.CanManageUsers():
		return nil, fmt.Errorf("user management requires the keymaster role")
	}

	return cfg.ClientProvider.APIClient(ctx)
}
