package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Musicweekchops/admitio-frontend-v3/cmd/admitioctl/cmd/admin"
	"github.com/Musicweekchops/admitio-frontend-v3/cmd/admitioctl/cmd/auth"
	"github.com/Musicweekchops/admitio-frontend-v3/cmd/admitioctl/cmd/leads"
	"github.com/Musicweekchops/admitio-frontend-v3/cmd/admitioctl/cmd/notifications"
	"github.com/Musicweekchops/admitio-frontend-v3/cmd/admitioctl/cmd/signup"
	"github.com/Musicweekchops/admitio-frontend-v3/cmd/admitioctl/cmd/users"
	"github.com/Musicweekchops/admitio-frontend-v3/cmd/admitioctl/internal/client"
	"github.com/Musicweekchops/admitio-frontend-v3/cmd/admitioctl/internal/config"
	"github.com/Musicweekchops/admitio-frontend-v3/cmd/admitioctl/internal/store"
	"github.com/Musicweekchops/admitio-frontend-v3/pkg/sdk"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

var (
	serverURL      string
	nonInteractive bool
)

var rootCmd = &cobra.Command{
	Use:   "admitioctl",
	Short: "Admitio CLI - admissions management client",
	Long: `admitioctl is the command-line interface for Admitio, a multi-tenant
admissions management platform. Use it to log in, track leads, and manage
institution users.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Check for ADMITIO_NON_INTERACTIVE environment variable
		if os.Getenv("ADMITIO_NON_INTERACTIVE") == "1" {
			nonInteractive = true
		}

		logger := newLogger(os.Getenv("ADMITIO_LOG_LEVEL"))

		sessionStore, err := newSessionStore()
		if err != nil {
			return err
		}

		cfg := &config.GlobalConfig{
			ServerURL:      serverURL,
			NonInteractive: nonInteractive,
			ClientProvider: client.NewProvider(serverURL, sessionStore, logger),
			Logger:         logger,
		}
		cmd.SetContext(config.InjectConfig(cmd.Context(), cfg))
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", defaultServerURL(), "Admitio API server URL (also set via ADMITIO_SERVER)")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Disable interactive prompts (also set via ADMITIO_NON_INTERACTIVE=1)")
	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(leads.LeadsCmd)
	rootCmd.AddCommand(users.UsersCmd)
	rootCmd.AddCommand(notifications.NotificationsCmd)
	rootCmd.AddCommand(admin.AdminCmd)
	rootCmd.AddCommand(signup.SignupCmd)
}

func defaultServerURL() string {
	if url := os.Getenv("ADMITIO_SERVER"); url != "" {
		return url
	}
	return "http://localhost:3000"
}

// newSessionStore selects the session backend. The default is a JSON file
// under ~/.admitio; ADMITIO_SESSION_BACKEND=redis switches to Redis for
// shared hosts and CI runners.
func newSessionStore() (sdk.Store, error) {
	switch backend := os.Getenv("ADMITIO_SESSION_BACKEND"); backend {
	case "", "file":
		return store.NewFileStore()
	case "redis":
		addr := os.Getenv("ADMITIO_REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		return store.NewRedisStore(redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("ADMITIO_REDIS_PASSWORD"),
		})), nil
	case "memory":
		return sdk.NewMemStore(), nil
	default:
		return nil, fmt.Errorf("unsupported session backend: %s (expected file, redis, or memory)", backend)
	}
}

func newLogger(level string) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(level),
	}))
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	default:
		// Keep the CLI quiet unless asked otherwise.
		return slog.LevelError
	}
}
