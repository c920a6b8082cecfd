package workflow

import (
	"fmt"

	"go_keystore_rotation/pkg/keystore"
	"go_keystore_rotation/pkg/log"
	"go_keystore_rotation/pkg/service"
)

// Rollback restores the trust store from a backup and restarts the
// service. By default the rolling backup is used; useOriginal selects the
// one-time original backup instead.
func (w *Workflow) Rollback(useOriginal bool) error {
	backupPath := w.cfg.Store.Path + keystore.RollingSuffix
	if useOriginal {
		backupPath = w.cfg.Store.Path + keystore.OriginalSuffix
	}
	log.L().Info("--- Starting Rollback ---", "backup", backupPath)

	if err := service.Stop(w.runner, w.cfg.Service.Name); err != nil {
		return err
	}
	if !w.dryRun {
		if err := service.WaitInactive(w.runner, w.cfg.Service.Name, w.cfg.StopTimeout()); err != nil {
			return fmt.Errorf("service did not stop: %w", err)
		}
	}

	if err := keystore.Restore(w.runner, w.cfg.Store.Path, backupPath); err != nil {
		return err
	}

	if err := service.Start(w.runner, w.cfg.Service.Name); err != nil {
		return err
	}
	if !w.dryRun {
		if err := service.WaitActive(w.runner, w.cfg.Service.Name, w.cfg.StartTimeout()); err != nil {
			return fmt.Errorf("service did not come back: %w", err)
		}
	}

	log.L().Info("--- Rollback Complete ---")
	return nil
}
