package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"go_keystore_rotation/pkg/config"
	"go_keystore_rotation/pkg/log"
	"go_keystore_rotation/pkg/workflow"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report whether a rotation would proceed, without changing anything.",
	Long: `This command compares the current certificate's checksum against the
stored fingerprint record and reports whether 'run' would install it. It's
a safe, read-only operation: no certificate is issued, the trust store is
not touched, and the service is not restarted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log.L().Info("[1/2] Loading configuration", "path", cfgFile)
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("configuration loading failed: %w", err)
		}

		log.L().Info("[2/2] Comparing certificate against fingerprint record")
		wf, err := workflow.NewWorkflow(cfg, dryRun, strict)
		if err != nil {
			return fmt.Errorf("failed to initialize workflow: %w", err)
		}
		defer wf.Close()

		changed, err := wf.Check()
		if err != nil {
			return err
		}
		if changed {
			fmt.Println("Rotation needed: certificate changed since last run.")
		} else {
			fmt.Println("Up to date: certificate unchanged since last run.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
