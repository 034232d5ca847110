package signup

import (
	"context"
	"fmt"
	"time"

	"github.com/Musicweekchops/admitio-frontend-v3/pkg/sdk"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var registerInput sdk.RegisterInput

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new institution",
	Long: `Registers a new institution on the free plan together with its first
keymaster account. A verification email is sent to the keymaster; the
account stays locked until 'signup verify' is run with the emailed token.`,
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		admitioClient := publicClient(cobraCmd.Context())

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 15*time.Second)
		defer cancel()

		if err := admitioClient.Register(ctx, registerInput); err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		pterm.Success.Printf("Registered %s (%s)\n", registerInput.InstitutionName, registerInput.Slug)
		pterm.Info.Printf("A verification email was sent to %s\n", registerInput.KeymasterEmail)
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerInput.InstitutionName, "name", "", "Institution name (required)")
	registerCmd.Flags().StringVar(&registerInput.Slug, "slug", "", "URL slug (required, check availability with `signup check-slug`)")
	registerCmd.Flags().StringVar(&registerInput.KeymasterName, "keymaster-name", "", "First keymaster's display name (required)")
	registerCmd.Flags().StringVar(&registerInput.KeymasterEmail, "keymaster-email", "", "First keymaster's email (required)")
	registerCmd.Flags().StringVar(&registerInput.Password, "password", "", "First keymaster's password (required)")
	registerCmd.MarkFlagRequired("name")
	registerCmd.MarkFlagRequired("slug")
	registerCmd.MarkFlagRequired("keymaster-name")
	registerCmd.MarkFlagRequired("keymaster-email")
	registerCmd.MarkFlagRequired("password")
}
