package workflow

import (
	"fmt"
	"time"

	"go_keystore_rotation/pkg/bundle"
	"go_keystore_rotation/pkg/certs"
	"go_keystore_rotation/pkg/issuer"
	"go_keystore_rotation/pkg/keystore"
	"go_keystore_rotation/pkg/log"
	"go_keystore_rotation/pkg/service"
	"go_keystore_rotation/pkg/state"
)

// Run executes one rotation cycle: Issue, Detect-change, Validate,
// Install. Re-running with an unchanged certificate is a no-op that
// touches neither the trust store nor the service.
func (w *Workflow) Run() error {
	log.L().Info("--- Starting Rotation ---", "identity", w.cfg.Identity)

	st, err := state.Load(w.statePath)
	if err != nil {
		// An unreadable record means we cannot prove the cert is
		// unchanged, so rotation proceeds from a zero state.
		log.L().Warn("Fingerprint record unreadable, proceeding as changed", "error", err)
		st = &state.State{}
	}

	if err := w.step("issue certificate", issuer.Issue(w.runner, w.cfg)); err != nil {
		return err
	}

	certData, readErr := w.runner.ReadFile(w.cfg.Paths.Cert)
	if readErr == nil {
		fingerprint := certs.Fingerprint(certData)
		if st.Fingerprint != "" && fingerprint == st.Fingerprint {
			log.L().Info("Certificate unchanged, nothing to do", "fingerprint", fingerprint)
			return nil
		}
		log.L().Info("Certificate changed, rotation required",
			"previous", st.Fingerprint, "current", fingerprint)

		if err := w.validate(certData); err != nil {
			return err
		}
		return w.install(st, fingerprint)
	}

	// Unreadable certificate: fall through to the missing-input guard so
	// the run fails without any mutation.
	log.L().Error("Could not read certificate file", "path", w.cfg.Paths.Cert, "error", readErr)
	return ErrMissingInput
}

// validate confirms both issued files exist non-empty and the certificate
// parses. No mutation is attempted when validation fails.
func (w *Workflow) validate(certData []byte) error {
	for _, path := range []string{w.cfg.Paths.Cert, w.cfg.Paths.Key} {
		ok, err := w.runner.Exists(path)
		if err != nil {
			return fmt.Errorf("failed to check %s: %w", path, err)
		}
		if !ok {
			log.L().Error("Required file missing or empty", "path", path)
			return ErrMissingInput
		}
	}

	cert, err := certs.Load(certData)
	if err != nil {
		log.L().Error("Issued certificate is not parseable", "path", w.cfg.Paths.Cert, "error", err)
		return ErrMissingInput
	}
	log.L().Info("Validated issued certificate", "cert", certs.Summary(cert))
	return nil
}

// install is the only phase with side effects on persistent service state.
func (w *Workflow) install(st *state.State, fingerprint string) error {
	storePath := w.cfg.Store.Path

	// Stores backed up before the explicit marker existed keep their
	// original backup.
	if !st.OriginalBackupDone {
		ok, err := w.runner.Exists(storePath + keystore.OriginalSuffix)
		if err != nil {
			log.L().Debug("Could not probe for existing original backup",
				"path", storePath+keystore.OriginalSuffix, "error", err)
		}
		if ok {
			st.OriginalBackupDone = true
		}
	}

	st.Fingerprint = fingerprint
	st.RotatedAt = time.Now().UTC()
	if !w.dryRun {
		if err := w.step("persist fingerprint record", st.Save(w.statePath)); err != nil {
			return err
		}
	}

	if err := w.step("stop service", service.Stop(w.runner, w.cfg.Service.Name)); err != nil {
		return err
	}
	if !w.dryRun {
		err := service.WaitInactive(w.runner, w.cfg.Service.Name, w.cfg.StopTimeout())
		if err := w.step("verify service stopped", err); err != nil {
			return err
		}
	}

	backupPath, usedOriginal, backupErr := keystore.Backup(w.runner, storePath, st.OriginalBackupDone)
	if err := w.step("back up trust store", backupErr); err != nil {
		return err
	}
	if backupErr == nil {
		log.L().Info("Trust store backed up", "path", backupPath, "original", usedOriginal)
		if usedOriginal && !w.dryRun {
			st.OriginalBackupDone = true
			if err := w.step("record original backup", st.Save(w.statePath)); err != nil {
				return err
			}
		}
	}

	archive, err := bundle.NewArchive(w.cfg.ArchiveDir(), w.cfg.Store.Alias)
	if err != nil {
		return err
	}
	// The transient archive never survives the run, whatever happens below.
	defer bundle.Remove(w.runner, archive)

	if err := w.step("export transient archive", bundle.Export(w.runner, w.cfg, archive)); err != nil {
		return err
	}
	if err := w.step("delete previous alias", keystore.DeleteAlias(w.runner, w.cfg)); err != nil {
		return err
	}
	if err := w.step("import into trust store", keystore.ImportArchive(w.runner, w.cfg, archive)); err != nil {
		return err
	}

	if err := w.step("start service", service.Start(w.runner, w.cfg.Service.Name)); err != nil {
		return err
	}
	if !w.dryRun {
		err := service.WaitActive(w.runner, w.cfg.Service.Name, w.cfg.StartTimeout())
		if err := w.step("verify service started", err); err != nil {
			return err
		}
	}

	log.L().Info("--- Rotation Complete ---", "fingerprint", fingerprint)
	return nil
}
