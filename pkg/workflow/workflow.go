package workflow

import (
	"errors"
	"fmt"

	"go_keystore_rotation/pkg/config"
	"go_keystore_rotation/pkg/log"
	"go_keystore_rotation/pkg/state"
	"go_keystore_rotation/pkg/task"
)

// ErrMissingInput is returned when the certificate or key file is absent
// (or the certificate is unparseable) after issuance. The trust store is
// never touched in that case.
var ErrMissingInput = errors.New("certificate or key file missing after issuance")

// Workflow orchestrates one idempotent rotation cycle against the
// controller host.
type Workflow struct {
	cfg       *config.Config
	runner    task.Runner
	statePath string
	dryRun    bool
	strict    bool
}

// NewWorkflow builds a workflow from configuration. In strict mode every
// failed external step aborts the run instead of being narrated as a
// warning.
func NewWorkflow(cfg *config.Config, dryRun, strict bool) (*Workflow, error) {
	runner, err := task.NewRunner(dryRun, cfg.SSH.Host, cfg.SSH.User, cfg.SSH.KeyPath)
	if err != nil {
		return nil, fmt.Errorf("could not create runner: %w", err)
	}
	return &Workflow{
		cfg:       cfg,
		runner:    runner,
		statePath: state.Path(cfg.WorkspaceDir),
		dryRun:    dryRun,
		strict:    strict,
	}, nil
}

// Close releases the underlying runner.
func (w *Workflow) Close() {
	if err := w.runner.Close(); err != nil {
		log.L().Debug("Failed to close runner", "error", err)
	}
}

// step applies the per-step failure policy: external-tool failures are
// narrated and skipped by default, fatal in strict mode.
func (w *Workflow) step(name string, err error) error {
	if err == nil {
		return nil
	}
	if w.strict {
		return fmt.Errorf("%s: %w", name, err)
	}
	log.L().Warn("Step failed, continuing", "step", name, "error", err)
	return nil
}
