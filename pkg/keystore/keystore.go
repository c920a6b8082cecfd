package keystore

import (
	"fmt"
	"strings"

	"go_keystore_rotation/pkg/bundle"
	"go_keystore_rotation/pkg/config"
	"go_keystore_rotation/pkg/log"
	"go_keystore_rotation/pkg/task"
)

// Backup suffixes on the controller host. The original backup is written
// exactly once; the rolling backup is overwritten on every later install.
const (
	OriginalSuffix = ".orig"
	RollingSuffix  = ".bak"
)

// Backup copies the trust store aside before it is modified. When the
// one-time original backup has not been taken yet it goes to
// `<store>.orig`, otherwise to `<store>.bak`. It returns the backup path
// and whether the original slot was used.
func Backup(runner task.Runner, storePath string, originalDone bool) (string, bool, error) {
	dest := storePath + RollingSuffix
	usedOriginal := false
	if !originalDone {
		dest = storePath + OriginalSuffix
		usedOriginal = true
	}

	log.L().Info("Backing up trust store", "from", storePath, "to", dest)
	if err := runner.Copy(storePath, dest); err != nil {
		return "", false, fmt.Errorf("trust store backup failed: %w", err)
	}
	return dest, usedOriginal, nil
}

// DeleteAlias removes the alias's entry from the trust store. Absence of
// the alias is not an error.
func DeleteAlias(runner task.Runner, cfg *config.Config) error {
	output, err := runner.Run(cfg.Tools.Keytool,
		"-delete",
		"-alias", cfg.Store.Alias,
		"-keystore", cfg.Store.Path,
		"-storepass", cfg.Store.Password,
	)
	if err != nil {
		if strings.Contains(output, "does not exist") {
			log.L().Debug("Alias not present in trust store, nothing to delete", "alias", cfg.Store.Alias)
			return nil
		}
		return fmt.Errorf("failed to delete alias %s: %w", cfg.Store.Alias, err)
	}
	return nil
}

// ImportArchive merges the transient archive's entry into the trust store
// under the configured alias, carrying any CA chain entries with it.
func ImportArchive(runner task.Runner, cfg *config.Config, a *bundle.Archive) error {
	_, err := runner.Run(cfg.Tools.Keytool,
		"-importkeystore",
		"-srckeystore", a.Path,
		"-srcstoretype", "PKCS12",
		"-srcstorepass", a.Password,
		"-destkeystore", cfg.Store.Path,
		"-deststorepass", cfg.Store.Password,
		"-destkeypass", cfg.Store.KeyPassword,
		"-alias", cfg.Store.Alias,
		"-noprompt",
	)
	if err != nil {
		return fmt.Errorf("trust store import failed: %w", err)
	}
	return nil
}

// Restore copies a backup over the trust store (rollback path).
func Restore(runner task.Runner, storePath, backupPath string) error {
	ok, err := runner.Exists(backupPath)
	if err != nil {
		return fmt.Errorf("failed to check backup %s: %w", backupPath, err)
	}
	if !ok {
		return fmt.Errorf("backup %s does not exist", backupPath)
	}

	log.L().Info("Restoring trust store from backup", "from", backupPath, "to", storePath)
	if err := runner.Copy(backupPath, storePath); err != nil {
		return fmt.Errorf("trust store restore failed: %w", err)
	}
	return nil
}
