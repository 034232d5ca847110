package admin

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
	auditTenantID string
	auditAction   string
	auditLimit    int
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Show the platform audit log",
	Long:  `Lists audit log entries, newest first. Impersonation sessions are always recorded here.`,
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		admitioClient, err := apiClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		entries, err := admitioClient.ListAudit(ctx, sdk.ListAuditOptions{
			TenantID: auditTenantID,
			Action:   auditAction,
			Limit:    auditLimit,
		})
		if err != nil {
			return fmt.Errorf("failed to list audit entries: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "WHEN\tACTION\tUSER\tTENANT\tDETAIL")

		for _, entry := range entries {
			tenant := entry.TenantID
			if tenant == "" {
				tenant = "-"
			}
			detail := entry.Detail
			if detail == "" {
				detail = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				entry.CreatedAt.Format("2006-01-02 15:04"), entry.Action, entry.UserID, tenant, detail)
		}

		w.Flush()

		return nil
	},
}

func init() {
	auditCmd.Flags().StringVar(&auditTenantID, "tenant-id", "", "Filter by institution id")
	auditCmd.Flags().StringVar(&auditAction, "action", "", "Filter by action name")
	auditCmd.Flags().IntVar(&auditLimit, "limit", 50, "Maximum number of entries to return")
}
