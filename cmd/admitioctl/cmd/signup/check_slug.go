package signup

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var checkSlugCmd = &cobra.Command{
	Use:   "check-slug <slug>",
	Short: "Check whether a URL slug is still free",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		admitioClient := publicClient(cobraCmd.Context())

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		availability, err := admitioClient.CheckSlug(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to check slug: %w", err)
		}

		if availability.Available {
			pterm.Success.Printf("Slug %s is available\n", availability.Slug)
		} else {
			pterm.Warning.Printf("Slug %s is taken\n", availability.Slug)
		}
		return nil
	},
}
