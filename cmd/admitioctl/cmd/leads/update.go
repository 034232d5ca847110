package leads

import (
	"context"
	"fmt"
	"time"

	"github.com/Musicweekchops/admitio-frontend-v3/pkg/sdk"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var updateInput sdk.LeadInput

var updateCmd = &cobra.Command{
	Use:   "update <lead-id>",
	Short: "Update a lead",
	Long: `Updates a lead's details or moves it through the pipeline. The update
replaces the lead's editable fields, so pass the full set of values you
want to keep.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		admitioClient, err := apiClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		lead, err := admitioClient.UpdateLead(ctx, args[0], updateInput)
		if err != nil {
			return fmt.Errorf("failed to update lead: %w", err)
		}

		pterm.Success.Printf("Updated lead %s (now %s)\n", lead.Name, lead.Status)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateInput.Name, "name", "", "Lead name")
	updateCmd.Flags().StringVar(&updateInput.Email, "email", "", "Contact email")
	updateCmd.Flags().StringVar(&updateInput.Phone, "phone", "", "Contact phone")
	updateCmd.Flags().StringVar(&updateInput.GuardianPhone, "guardian-phone", "", "Guardian's contact phone")
	updateCmd.Flags().StringVar(&updateInput.CareerID, "career", "", "Career of interest (id)")
	updateCmd.Flags().StringVar(&updateInput.SourceID, "source", "", "How the lead heard about the institution (id)")
	updateCmd.Flags().StringVar((*string)(&updateInput.Status), "status", "", "Pipeline stage (nuevo, contactado, en_seguimiento, examen, matriculado, descartado)")
	updateCmd.MarkFlagRequired("name")
}
