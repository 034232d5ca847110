package leads

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	contactKind        string
	contactDescription string
)

var contactCmd = &cobra.Command{
	Use:   "contact <lead-id>",
	Short: "Log a contact attempt with a lead",
	Long: `Records that the lead was contacted (call, WhatsApp message, email,
in-person visit) so the follow-up history stays complete.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		admitioClient, err := apiClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		if err := admitioClient.LogLeadContact(ctx, args[0], contactKind, contactDescription); err != nil {
			return fmt.Errorf("failed to log contact: %w", err)
		}

		pterm.Success.Printf("Logged %s contact for lead %s\n", contactKind, args[0])
		return nil
	},
}

func init() {
	contactCmd.Flags().StringVar(&contactKind, "kind", "llamada", "Contact channel (llamada, whatsapp, email, visita)")
	contactCmd.Flags().StringVar(&contactDescription, "note", "", "Free-form note about the contact")
}
