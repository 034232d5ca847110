package notifications

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/Musicweekchops/admitio-frontend-v3/cmd/admitioctl/internal/config"
	"github.com/Musicweekchops/admitio-frontend-v3/pkg/sdk"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// NotificationsCmd is the parent command for the in-app notification feed
var NotificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Read the notification feed",
}

func init() {
	NotificationsCmd.AddCommand(listCmd)
	NotificationsCmd.AddCommand(readCmd)
	NotificationsCmd.AddCommand(readAllCmd)
}

func apiClient(ctx context.Context) (*sdk.Client, error) {
	cfg := config.MustFromContext(ctx)

	session := cfg.ClientProvider.Session(ctx).Snapshot()
	if !session.IsAuthenticated() {
		return nil, fmt.Errorf("not logged in; please run `admitioctl auth login`")
	}

	return cfg.ClientProvider.APIClient(ctx)
}

var listUnread bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notifications",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		admitioClient, err := apiClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		var read *bool
		if listUnread {
			unread := false
			read = &unread
		}

		entries, err := admitioClient.ListNotifications(ctx, read)
		if err != nil {
			return fmt.Errorf("failed to list notifications: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tWHEN\tREAD\tMESSAGE")
		for _, entry := range entries {
			readMark := "-"
			if entry.Read {
				readMark = "yes"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				entry.ID, entry.CreatedAt.Format("2006-01-02 15:04"), readMark, entry.Message)
		}
		w.Flush()

		return nil
	},
}

var readCmd = &cobra.Command{
	Use:   "read <notification-id>",
	Short: "Mark a notification as read",
	Args:  cobra.ExactArgs(1),
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		admitioClient, err := apiClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		if err := admitioClient.MarkNotificationRead(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to mark notification read: %w", err)
		}

		pterm.Success.Printf("Marked notification %s read\n", args[0])
		return nil
	},
}

var readAllCmd = &cobra.Command{
	Use:   "read-all",
	Short: "Mark every notification as read",
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		admitioClient, err := apiClient(cobraCmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cobraCmd.Context(), 10*time.Second)
		defer cancel()

		if err := admitioClient.MarkAllNotificationsRead(ctx); err != nil {
			return fmt.Errorf("failed to mark notifications read: %w", err)
		}

		pterm.Success.Println("All notifications marked read")
		return nil
	},
}
