package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"go_keystore_rotation/pkg/config"
	"go_keystore_rotation/pkg/workflow"
)

var rollbackUseOriginal bool

var rollbackCmd = &cobra.Command{
	Use:   "rollback",
	Short: "Restore the trust store from its backup and restart the service.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := confirmAction("restore the trust store from backup (the service will restart)"); err != nil {
			return err
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

		if err := wf.Rollback(rollbackUseOriginal); err != nil {
			return fmt.Errorf("rollback execution failed: %w", err)
		}

		fmt.Println("Trust store rollback completed successfully!")
		return nil
	},
}

func init() {
	rollbackCmd.Flags().BoolVar(&rollbackUseOriginal, "original", false, "restore the one-time original backup instead of the rolling backup")
	rootCmd.AddCommand(rollbackCmd)
}
