package users

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var limitCmd = &cobra.Command{
	Use:   "limit",
	Short: "Show the user quota for the institution's plan",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		admitioClient, err := apiClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		limit, err := admitioClient.UserLimit(ctx)
		if err != nil {
			return fmt.Errorf("failed to get user limit: %w", err)
		}

		pterm.Info.Printf("%d of %d users in use on the %s plan\n", limit.Current, limit.Limit, limit.Plan)
		if limit.Current >= limit.Limit {
			pterm.Warning.Println("User quota exhausted; upgrade the plan to add more accounts")
		}
		return nil
	},
}
