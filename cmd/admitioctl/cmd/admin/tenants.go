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

// tenantsCmd manages institutions from the platform console.
var tenantsCmd = &cobra.Command{
	Use:   "tenants",
	Short: "Manage institutions",
}

var (
	tenantsListPlan   string
	tenantsListSearch string
	tenantsListLimit  int
)

var tenantsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List institutions",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		admitioClient, err := apiClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		tenants, err := admitioClient.ListTenants(ctx, sdk.ListTenantsOptions{
			Plan:   sdk.Plan(tenantsListPlan),
			Search: tenantsListSearch,
			Limit:  tenantsListLimit,
		})
		if err != nil {
			return fmt.Errorf("failed to list institutions: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSLUG\tPLAN\tACTIVE\tUSERS\tLEADS")

		for _, tenant := range tenants {
			active := "-"
			if tenant.Active {
				active = "yes"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%d\n",
				tenant.ID, tenant.Name, tenant.Slug, tenant.Plan, active, tenant.UserCount, tenant.LeadCount)
		}

		w.Flush()

		return nil
	},
}

var tenantsGetCmd = &cobra.Command{
	Use:   "get <tenant-id>",
	Short: "Show one institution in detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		admitioClient, err := apiClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		tenant, err := admitioClient.GetTenant(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get institution: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "ID\t%s\n", tenant.ID)
		fmt.Fprintf(w, "NAME\t%s\n", tenant.Name)
		fmt.Fprintf(w, "SLUG\t%s\n", tenant.Slug)
		fmt.Fprintf(w, "PLAN\t%s\n", tenant.Plan)
		fmt.Fprintf(w, "ACTIVE\t%t\n", tenant.Active)
		fmt.Fprintf(w, "USERS\t%d\n", tenant.UserCount)
		fmt.Fprintf(w, "LEADS\t%d\n", tenant.LeadCount)
		fmt.Fprintf(w, "CREATED\t%s\n", tenant.CreatedAt.Format(time.RFC1123))
		w.Flush()

		return nil
	},
}

var createInput sdk.TenantInput

var tenantsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an institution",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		admitioClient, err := apiClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		tenant, err := admitioClient.CreateTenant(ctx, createInput)
		if err != nil {
			return fmt.Errorf("failed to create institution: %w", err)
		}

		pterm.Success.Printf("Created institution %s (%s) on the %s plan\n", tenant.Name, tenant.Slug, tenant.Plan)
		return nil
	},
}

var (
	updateInput  sdk.TenantInput
	updateActive bool
)

var tenantsUpdateCmd = &cobra.Command{
	Use:   "update <tenant-id>",
	Short: "Update an institution",
	Long:  `Updates an institution's name, plan, or active state.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		admitioClient, err := apiClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		if cobraCmd.Flags().Changed("active") {
			updateInput.Active = &updateActive
		}

		tenant, err := admitioClient.UpdateTenant(ctx, args[0], updateInput)
		if err != nil {
			return fmt.Errorf("failed to update institution: %w", err)
		}

		pterm.Success.Printf("Updated institution %s\n", tenant.Name)
		return nil
	},
}

var tenantsDeleteConfirm string

var tenantsDeleteCmd = &cobra.Command{
	Use:   "delete <tenant-id>",
	Short: "Delete an institution and all of its data",
	Long: `Permanently deletes an institution, its users, and its leads. The server
demands the literal confirmation word ELIMINAR; pass it via --confirm.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		if tenantsDeleteConfirm != "ELIMINAR" {
			return fmt.Errorf("refusing to delete: pass --confirm ELIMINAR to proceed")
		}

		admitioClient, err := apiClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		if err := admitioClient.DeleteTenant(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to delete institution: %w", err)
		}

		pterm.Success.Printf("Deleted institution %s\n", args[0])
		return nil
	},
}

func init() {
	tenantsCmd.AddCommand(tenantsListCmd)
	tenantsCmd.AddCommand(tenantsGetCmd)
	tenantsCmd.AddCommand(tenantsCreateCmd)
	tenantsCmd.AddCommand(tenantsUpdateCmd)
	tenantsCmd.AddCommand(tenantsDeleteCmd)

	tenantsListCmd.Flags().StringVar(&tenantsListPlan, "plan", "", "Filter by plan (free, pro, institucion)")
	tenantsListCmd.Flags().StringVar(&tenantsListSearch, "search", "", "Filter by name or slug substring")
	tenantsListCmd.Flags().IntVar(&tenantsListLimit, "limit", 0, "Maximum number of institutions to return (0 = server default)")

	tenantsCreateCmd.Flags().StringVar(&createInput.Name, "name", "", "Institution name (required)")
	tenantsCreateCmd.Flags().StringVar(&createInput.Slug, "slug", "", "URL slug (required)")
	tenantsCreateCmd.Flags().StringVar((*string)(&createInput.Plan), "plan", "free", "Plan: free, pro, or institucion")
	tenantsCreateCmd.MarkFlagRequired("name")
	tenantsCreateCmd.MarkFlagRequired("slug")

	tenantsUpdateCmd.Flags().StringVar(&updateInput.Name, "name", "", "Institution name (required)")
	tenantsUpdateCmd.MarkFlagRequired("name")
	tenantsUpdateCmd.Flags().StringVar((*string)(&updateInput.Plan), "plan", "", "Plan: free, pro, or institucion")
	tenantsUpdateCmd.Flags().BoolVar(&updateActive, "active", true, "Activate or deactivate the institution")

	tenantsDeleteCmd.Flags().StringVar(&tenantsDeleteConfirm, "confirm", "", "Type ELIMINAR to confirm the deletion")
}
