package leads

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// careersCmd manages the career catalog that lead forms draw from.
var careersCmd = &cobra.Command{
	Use:   "careers",
	Short: "Manage the career catalog",
}

var careersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List careers",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		admitioClient, err := apiClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		careers, err := admitioClient.ListCareers(ctx)
		if err != nil {
			return fmt.Errorf("failed to list careers: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME")
		for _, career := range careers {
			fmt.Fprintf(w, "%s\t%s\n", career.ID, career.Name)
		}
		w.Flush()

		return nil
	},
}

var careersAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a career",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		admitioClient, err := apiClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		career, err := admitioClient.CreateCareer(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to add career: %w", err)
		}

		pterm.Success.Printf("Added career %s (%s)\n", career.Name, career.ID)
		return nil
	},
}

var careersRenameCmd = &cobra.Command{
	Use:   "rename <career-id> <name>",
	Short: "Rename a career",
	Args:  cobra.ExactArgs(2),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		admitioClient, err := apiClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		career, err := admitioClient.UpdateCareer(ctx, args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to rename career: %w", err)
		}

		pterm.Success.Printf("Renamed career to %s\n", career.Name)
		return nil
	},
}

var careersRemoveCmd = &cobra.Command{
	Use:   "remove <career-id>",
	Short: "Remove a career",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		admitioClient, err := apiClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		if err := admitioClient.DeleteCareer(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to remove career: %w", err)
		}

		pterm.Success.Printf("Removed career %s\n", args[0])
		return nil
	},
}

func init() {
	careersCmd.AddCommand(careersListCmd)
	careersCmd.AddCommand(careersAddCmd)
	careersCmd.AddCommand(careersRenameCmd)
	careersCmd.AddCommand(careersRemoveCmd)
}
