package leads

import (
	"context"
	"fmt"
	"time"

	"github.com/Musicweekchops/admitio-frontend-v3/pkg/sdk"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var createInput sdk.LeadInput

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a new lead",
	Long: `Registers a prospective student. Only the name is mandatory; contact
details and the career of interest can be filled in later with
'leads update'.`,
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		admitioClient, err := apiClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		lead, err := admitioClient.CreateLead(ctx, createInput)
		if err != nil {
			return fmt.Errorf("failed to create lead: %w", err)
		}

		pterm.Success.Printf("Created lead %s (%s)\n", lead.Name, lead.ID)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createInput.Name, "name", "", "Lead name (required)")
	createCmd.Flags().StringVar(&createInput.Email, "email", "", "Contact email")
	createCmd.Flags().StringVar(&createInput.Phone, "phone", "", "Contact phone")
	createCmd.Flags().StringVar(&createInput.GuardianPhone, "guardian-phone", "", "Guardian's contact phone")
	createCmd.Flags().StringVar(&createInput.CareerID, "career", "", "Career of interest (id)")
	createCmd.Flags().StringVar(&createInput.SourceID, "source", "", "How the lead heard about the institution (id)")
	createCmd.MarkFlagRequired("name")
}
