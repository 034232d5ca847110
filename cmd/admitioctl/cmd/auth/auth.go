package auth

import (
	"github.com/Musicweekchops/admitio-frontend-v3/cmd/admitioctl/internal/config"
	"github.com/Musicweekchops/admitio-frontend-v3/pkg/sdk"
	"github.com/spf13/cobra"
)

// AuthCmd is the parent command for auth operations
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication",
	Long:  `Commands for logging in, logging out, and inspecting the session.`,
}

func init() {
	AuthCmd.AddCommand(loginCmd)
	AuthCmd.AddCommand(adminLoginCmd)
	AuthCmd.AddCommand(logoutCmd)
	AuthCmd.AddCommand(statusCmd)
	AuthCmd.AddCommand(exportCmd)
	AuthCmd.AddCommand(passwdCmd)
}

// sessionManager returns the shared session manager, restored from the
// session store on first use.
func sessionManager(cmd *cobra.Command) *sdk.Manager {
	cfg := config.MustFromContext(cmd.Context())
	return cfg.ClientProvider.Session(cmd.Context())
}
