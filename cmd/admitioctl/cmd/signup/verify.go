package signup

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <token>",
	Short: "Verify a new institution's account",
	Long:  `Confirms the verification token from the signup email and unlocks the account.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		admitioClient := publicClient(cobraCmd.Context())

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		if err := admitioClient.VerifyAccount(ctx, args[0]); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}

		pterm.Success.Println("Account verified; you can now log in with `admitioctl auth login`")
		return nil
	},
}

var resendCmd = &cobra.Command{
	Use:   "resend <email>",
	Short: "Resend the verification email",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		admitioClient := publicClient(cobraCmd.Context())

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		if err := admitioClient.ResendVerification(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to resend verification email: %w", err)
		}

		pterm.Success.Printf("Verification email sent to %s\n", args[0])
		return nil
	},
}
