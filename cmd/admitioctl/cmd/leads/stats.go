package leads

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/Musicweekchops/admitio-frontend-v3/pkg/sdk"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// statusOrder keeps the per-status breakdown in pipeline order rather than
// map order.
var statusOrder = []sdk.LeadStatus{
	sdk.LeadNuevo,
	sdk.LeadContactado,
	sdk.LeadEnSeguimiento,
	sdk.LeadExamen,
	sdk.LeadMatriculado,
	sdk.LeadDescartado,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the dashboard lead statistics",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		admitioClient, err := apiClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		stats, err := admitioClient.LeadStats(ctx)
		if err != nil {
			return fmt.Errorf("failed to get lead stats: %w", err)
		}

		pterm.DefaultSection.Println("Lead Statistics")
		pterm.Info.Printf("Total: %d  Today: %d  This week: %d\n", stats.Total, stats.Today, stats.ThisWeek)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "STATUS\tCOUNT")
		for _, status := range statusOrder {
			fmt.Fprintf(w, "%s\t%d\n", status, stats.PerStatus[status])
		}
		w.Flush()

		if stats.Limit != nil {
			pterm.DefaultSection.Println("Plan Quota")
			pterm.Info.Printf("%d of %d leads available\n", stats.Limit.Available, stats.Limit.Limit)
			if stats.Limit.Alert {
				pterm.Warning.Println("Lead quota nearly exhausted; consider upgrading the plan")
			}
		}

		return nil
	},
}
