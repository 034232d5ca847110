package leads

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// sourcesCmd manages the lead-source catalog (how prospects found out about
// the institution).
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Manage the lead-source catalog",
}

var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List lead sources",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		admitioClient, err := apiClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		sources, err := admitioClient.ListLeadSources(ctx)
		if err != nil {
			return fmt.Errorf("failed to list lead sources: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME")
		for _, source := range sources {
			fmt.Fprintf(w, "%s\t%s\n", source.ID, source.Name)
		}
		w.Flush()

		return nil
	},
}

var sourcesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a lead source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		admitioClient, err := apiClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		source, err := admitioClient.CreateLeadSource(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to add lead source: %w", err)
		}

		pterm.Success.Printf("Added lead source %s (%s)\n", source.Name, source.ID)
		return nil
	},
}

var sourcesRenameCmd = &cobra.Command{
	Use:   "rename <source-id> <name>",
	Short: "Rename a lead source",
	Args:  cobra.ExactArgs(2),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		admitioClient, err := apiClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		source, err := admitioClient.UpdateLeadSource(ctx, args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to rename lead source: %w", err)
		}

		pterm.Success.Printf("Renamed lead source to %s\n", source.Name)
		return nil
	},
}

var sourcesRemoveCmd = &cobra.Command{
	Use:   "remove <source-id>",
	Short: "Remove a lead source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		admitioClient, err := apiClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		if err := admitioClient.DeleteLeadSource(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to remove lead source: %w", err)
		}

		pterm.Success.Printf("Removed lead source %s\n", args[0])
		return nil
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesListCmd)
	sourcesCmd.AddCommand(sourcesAddCmd)
	sourcesCmd.AddCommand(sourcesRenameCmd)
	sourcesCmd.AddCommand(sourcesRemoveCmd)
}
