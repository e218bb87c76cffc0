// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "phonemode",
	Short: "phonemode is a web service mapping phone numbers to handling modes",
	Long: `phonemode is a web service that maps phone numbers to a handling
mode (CALL or OTP) and exposes lookup, CRUD, bulk import and stats endpoints.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
