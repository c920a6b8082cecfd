package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go_keystore_rotation/pkg/log"
)

var (
	cfgFile   string
	assumeYes bool
	dryRun    bool
	strict    bool
	logLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "keystore-rotate",
	Short: "A tool for rotating a controller's trust-store certificate.",
	Long: `keystore-rotate refreshes the TLS certificate of a network controller
service: it requests a new certificate/key pair from the local issuance
agent and, when the certificate actually changed, imports the pair into
the controller's trust store and restarts the service. Unchanged runs are
a cheap no-op, so it is safe to schedule unattended.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Init(logLevel)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file (default is config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&assumeYes, "yes", false, "skip confirmation prompts")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "narrate every step without executing anything")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "treat any failed external step as fatal")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}
