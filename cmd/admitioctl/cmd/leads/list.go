package leads

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/Musicweekchops/admitio-frontend-v3/pkg/sdk"
	"github.com/spf13/cobra"
)

var (
	listStatus   string
	listArchived bool
	listLimit    int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the institution's leads",
	Long:  `Lists leads newest first, optionally filtered by pipeline stage.`,
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		admitioClient, err := apiClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		opts := sdk.ListLeadsOptions{
			Status: sdk.LeadStatus(listStatus),
			Limit:  listLimit,
		}
		if cobraCmd.Flags().Changed("archived") {
			opts.Archived = &listArchived
		}

		leads, err := admitioClient.ListLeads(ctx, opts)
		if err != nil {
			return fmt.Errorf("failed to list leads: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPHONE\tSTATUS\tARCHIVED\tCREATED")

		for _, lead := range leads {
			phone := lead.Phone
			if phone == "" {
				phone = "-"
			}
			archived := "-"
			if lead.Archived {
				archived = "yes"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				lead.ID, lead.Name, phone, lead.Status, archived, lead.CreatedAt.Format("2006-01-02"))
		}

		w.Flush()

		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listStatus, "status", "", "Filter by pipeline stage (nuevo, contactado, en_seguimiento, examen, matriculado, descartado)")
	listCmd.Flags().BoolVar(&listArchived, "archived", false, "Filter by archived state (omit the flag for both)")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum number of leads to return (0 = server default)")
}
