package leads

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <lead-id>",
	Short: "Show one lead in detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		admitioClient, err := apiClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		lead, err := admitioClient.GetLead(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get lead: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "ID\t%s\n", lead.ID)
		fmt.Fprintf(w, "NAME\t%s\n", lead.Name)
		fmt.Fprintf(w, "EMAIL\t%s\n", lead.Email)
		fmt.Fprintf(w, "PHONE\t%s\n", lead.Phone)
		fmt.Fprintf(w, "GUARDIAN PHONE\t%s\n", lead.GuardianPhone)
		fmt.Fprintf(w, "CAREER\t%s\n", lead.CareerID)
		fmt.Fprintf(w, "SOURCE\t%s\n", lead.SourceID)
		fmt.Fprintf(w, "STATUS\t%s\n", lead.Status)
		fmt.Fprintf(w, "ARCHIVED\t%t\n", lead.Archived)
		fmt.Fprintf(w, "CREATED\t%s\n", lead.CreatedAt.Format(time.RFC1123))
		w.Flush()

		return nil
	},
}
