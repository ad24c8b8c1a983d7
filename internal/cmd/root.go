// Package cmd wires the console commands: authentication, the product
// catalog and approval queue, user management, the dashboard and FDS
// attachments. Every authenticated command goes through the session
// and role guards before touching the backend.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quimidocs",
	Short: "Console for chemical product and safety data sheet management",
	Long: `quimidocs manages an industrial chemical inventory: products with
their GHS hazard classification, safety data sheets (FDS), the approval
queue and user accounts.

Sign in first with 'quimidocs login'. What each command may do depends
on your access level (administrador, analista or visualizador).`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command under the given context so a
// signal cancels in-flight requests.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("api-url", "", "Backend base URL (overrides config)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
}
