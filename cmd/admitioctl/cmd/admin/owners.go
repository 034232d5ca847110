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

// ownersCmd manages the platform's super owner accounts. Creation and
// deletion are reserved for the supreme super owner.
var ownersCmd = &cobra.Command{
	Use:   "owners",
	Short: "Manage super owners",
}

var ownersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List super owners",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		admitioClient, err := apiClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		owners, err := admitioClient.ListSuperOwners(ctx)
		if err != nil {
			return fmt.Errorf("failed to list super owners: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE")
		for _, owner := range owners {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", owner.ID, owner.DisplayName, owner.Email, owner.Role)
		}
		w.Flush()

		return nil
	},
}

var (
	ownersCreateName  string
	ownersCreateEmail string
)

var ownersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a super owner",
	Long: `Creates a platform super owner account. Supreme super owner only. The
server issues a temporary password that must be changed on first login.`,
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		admitioClient, err := requireSupremo(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		owner, err := admitioClient.CreateSuperOwner(ctx, sdk.UserInput{
			Name:  ownersCreateName,
			Email: ownersCreateEmail,
			Role:  sdk.RoleSuperOwner,
		})
		if err != nil {
			return fmt.Errorf("failed to create super owner: %w", err)
		}

		pterm.Success.Printf("Created super owner %s (%s)\n", owner.DisplayName, owner.Email)
		return nil
	},
}

var ownersDeleteYes bool

var ownersDeleteCmd = &cobra.Command{
	Use:   "delete <user-id>",
	Short: "Delete a super owner",
	Long:  `Deletes a platform super owner account. Supreme super owner only.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		if !ownersDeleteYes {
			return fmt.Errorf("refusing to delete without --yes")
		}

		admitioClient, err := requireSupremo(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		if err := admitioClient.DeleteSuperOwner(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to delete super owner: %w", err)
		}

		pterm.Success.Printf("Deleted super owner %s\n", args[0])
		return nil
	},
}

func init() {
	ownersCmd.AddCommand(ownersListCmd)
	ownersCmd.AddCommand(ownersCreateCmd)
	ownersCmd.AddCommand(ownersDeleteCmd)

	ownersCreateCmd.Flags().StringVar(&ownersCreateName, "name", "", "Display name (required)")
	ownersCreateCmd.Flags().StringVar(&ownersCreateEmail, "email", "", "Login email (required)")
	ownersCreateCmd.MarkFlagRequired("name")
	ownersCreateCmd.MarkFlagRequired("email")

	ownersDeleteCmd.Flags().BoolVar(&ownersDeleteYes, "yes", false, "Confirm the deletion")
}
