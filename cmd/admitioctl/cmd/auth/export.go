package auth

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Musicweekchops/admitio-frontend-v3/pkg/sdk"
	"github.com/spf13/cobra"
)

var (
	shellFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the session token as an environment variable",
	Long: `Export the session's bearer token as the ADMITIO_TOKEN environment
variable, for scripts and tools that call the Admitio API directly.

Supported shells:
  - posix (bash, zsh, sh) - default
  - fish
  - powershell

Usage:
  # POSIX shells (bash/zsh/sh)
  eval $(admitioctl auth export)

  # Fish shell
  eval (admitioctl auth export --shell fish)

  # PowerShell
  admitioctl auth export --shell powershell | Invoke-Expression

The token is loaded from your stored session. If not logged in or the token
is expired, you will be prompted to run 'admitioctl auth login'.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&shellFormat, "shell", "", "Shell format: posix, fish, powershell (auto-detected if not specified)")
}

func runExport(cmd *cobra.Command, args []string) error {
	manager := sessionManager(cmd)
	if !manager.Snapshot().IsAuthenticated() {
		return fmt.Errorf("not logged in\n\nPlease run 'admitioctl auth login' first")
	}

	token := manager.Token()
	if info, err := sdk.InspectToken(token); err == nil && info.Expired() {
		return fmt.Errorf("session token has expired\n\nPlease run 'admitioctl auth login' again")
	}

	// Auto-detect shell if not specified
	if shellFormat == "" {
		shellFormat = detectShell()
	}

	// Normalize shell format
	shellFormat = strings.ToLower(shellFormat)

	switch shellFormat {
	case "posix", "bash", "zsh", "sh":
		emitExport(fmt.Sprintf("export ADMITIO_TOKEN=%q", token),
			"eval $(admitioctl auth export)")
	case "fish":
		emitExport(fmt.Sprintf("set -x ADMITIO_TOKEN %q", token),
			"eval (admitioctl auth export --shell fish)")
	case "powershell", "pwsh", "ps1":
		emitExport(fmt.Sprintf("$env:ADMITIO_TOKEN=%q", token),
			"admitioctl auth export --shell powershell | Invoke-Expression")
	default:
		return fmt.Errorf("unsupported shell format: %s\n\nSupported formats: posix, fish, powershell", shellFormat)
	}

	return nil
}

// detectShell guesses the shell from $SHELL. Anything unrecognized counts
// as POSIX.
func detectShell() string {
	switch filepath.Base(os.Getenv("SHELL")) {
	case "fish":
		return "fish"
	case "pwsh", "powershell":
		return "powershell"
	default:
		return "posix"
	}
}

// emitExport writes the assignment to stdout, where eval (or
// Invoke-Expression) picks it up. When stdout is a terminal nothing is
// eval'ing us, so a usage hint goes to stderr first.
func emitExport(assignment, hint string) {
	if isTerminal(os.Stdout) {
		fmt.Fprintln(os.Stderr, "# Run this command to configure your environment:")
		fmt.Fprintf(os.Stderr, "#   %s\n\n", hint)
	}
	fmt.Println(assignment)
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
