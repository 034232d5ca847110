package auth

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out from Admitio",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionManager(cmd).Logout(cmd.Context())
		fmt.Println("Logged out successfully")
		return nil
	},
}
