package workflow

import (
	"fmt"

	"go_keystore_rotation/pkg/certs"
	"go_keystore_rotation/pkg/log"
	"go_keystore_rotation/pkg/state"
)

// Check reports whether a rotation would proceed, without issuing a new
// certificate or mutating anything. It reads the current certificate and
// compares its fingerprint against the stored record.
func (w *Workflow) Check() (bool, error) {
	st, err := state.Load(w.statePath)
	if err != nil {
		log.L().Warn("Fingerprint record unreadable, a rotation would proceed", "error", err)
		st = &state.State{}
	}

	certData, err := w.runner.ReadFile(w.cfg.Paths.Cert)
	if err != nil {
		return false, fmt.Errorf("cannot read certificate %s: %w", w.cfg.Paths.Cert, err)
	}

	fingerprint := certs.Fingerprint(certData)
	changed := st.Fingerprint == "" || fingerprint != st.Fingerprint

	if cert, err := certs.Load(certData); err == nil {
		log.L().Info("Current certificate", "cert", certs.Summary(cert))
	}
	if changed {
		log.L().Info("Certificate differs from fingerprint record, rotation would proceed",
			"previous", st.Fingerprint, "current", fingerprint)
	} else {
		log.L().Info("Certificate matches fingerprint record, rotation would be a no-op",
			"fingerprint", fingerprint)
	}
	return changed, nil
}
