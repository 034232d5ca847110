package signup

import (
	"context"

	"github.com/Musicweekchops/admitio-frontend-v3/cmd/admitioctl/internal/config"
	"github.com/Musicweekchops/admitio-frontend-v3/pkg/sdk"
	"github.com/spf13/cobra"
)

// SignupCmd is the parent command for institution registration. These are
// public endpoints; no session is required.
var SignupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Register a new institution",
	Long:  `Commands for signing up a new institution and verifying its account.`,
}

func init() {
	SignupCmd.AddCommand(checkSlugCmd)
	SignupCmd.AddCommand(registerCmd)
	SignupCmd.AddCommand(verifyCmd)
	SignupCmd.AddCommand(resendCmd)
}

func publicClient(ctx context.Context) *sdk.Client {
	cfg := config.MustFromContext(ctx)
	return cfg.ClientProvider.PublicClient()
}
