package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"go_keystore_rotation/pkg/config"
	"go_keystore_rotation/pkg/workflow"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full certificate rotation procedure.",
	Long: `Requests a fresh certificate/key pair from the issuance agent, compares
the certificate against the stored fingerprint record, and when it changed
installs it into the trust store and restarts the service. With an
unchanged certificate the run is a side-effect-free no-op.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !dryRun {
			if err := confirmAction("rotate the controller certificate (the service may restart)"); err != nil {
				return err
			}
		}

		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		wf, err := workflow.NewWorkflow(cfg, dryRun, strict)
		if err != nil {
			return fmt.Errorf("failed to initialize workflow: %w", err)
		}
		defer wf.Close()

		if err := wf.Run(); err != nil {
			return fmt.Errorf("rotation failed: %w", err)
		}

		fmt.Println("Certificate rotation completed successfully!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
