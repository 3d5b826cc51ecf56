// Package root contains the root command for the application
package root

import (
	"emprunteo/tarificateur/internal/config"
	"emprunteo/tarificateur/internal/export"
	"emprunteo/tarificateur/pkg/tarifclient"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "tarificateur",
		Short: "A CLI tool to price borrower-insurance tariffs against the remote pricing service.",
		Long: `tarificateur sends a borrower/loan/guarantee profile to the external
insurance-pricing service and prints the returned product quotes.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to tarificateur!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			tarifclient.SetLogger(Log)
			export.SetLogger(Log)
		},
	}
)
