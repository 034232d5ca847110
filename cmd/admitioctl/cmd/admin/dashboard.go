package admin

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

var planOrder = []sdk.Plan{sdk.PlanFree, sdk.PlanPro, sdk.PlanInstitucion}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show platform-wide statistics",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		admitioClient, err := apiClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		stats, err := admitioClient.PlatformStats(ctx)
		if err != nil {
			return fmt.Errorf("failed to get platform stats: %w", err)
		}

		pterm.DefaultSection.Println("Platform Dashboard")
		pterm.Info.Printf("Institutions: %d active, %d inactive\n", stats.Tenants.Active, stats.Tenants.Inactive)
		pterm.Info.Printf("Users: %d\n", stats.Users.Total)
		pterm.Info.Printf("Leads: %d active, %d today, %d enrolled\n", stats.Leads.Active, stats.Leads.Today, stats.Leads.Enrolled)

		pterm.DefaultSection.Println("Institutions per Plan")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PLAN\tCOUNT")
		for _, plan := range planOrder {
			fmt.Fprintf(w, "%s\t%d\n", plan, stats.PerPlan[plan])
		}
		w.Flush()

		return nil
	},
}
