package leads

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var unarchiveTenantID string

var archiveCmd = &cobra.Command{
	Use:   "archive <lead-id>",
	Short: "Archive a lead",
	Long:  `Archives a lead, hiding it from the active pipeline without deleting it.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		admitioClient, err := apiClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		if err := admitioClient.ArchiveLead(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to archive lead: %w", err)
		}

		pterm.Success.Printf("Archived lead %s\n", args[0])
		return nil
	},
}

var unarchiveCmd = &cobra.Command{
	Use:   "unarchive <lead-id>",
	Short: "Restore an archived lead",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		admitioClient, err := apiClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		if err := admitioClient.UnarchiveLead(ctx, args[0], unarchiveTenantID); err != nil {
			return fmt.Errorf("failed to unarchive lead: %w", err)
		}

		pterm.Success.Printf("Restored lead %s\n", args[0])
		return nil
	},
}

func init() {
	unarchiveCmd.Flags().StringVar(&unarchiveTenantID, "tenant-id", "", "Owning institution id (required by the server to confirm the restore)")
	unarchiveCmd.MarkFlagRequired("tenant-id")
}
