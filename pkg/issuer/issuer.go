package issuer

import (
	"fmt"

	"go_keystore_rotation/pkg/config"
	"go_keystore_rotation/pkg/log"
	"go_keystore_rotation/pkg/task"
)

// Issue asks the external issuance agent for a fresh certificate/key pair
// for the configured identity. The agent writes both files to the
// configured paths on the controller host.
func Issue(runner task.Runner, cfg *config.Config) error {
	args := append([]string{}, cfg.Issuer.ExtraArgs...)
	args = append(args, cfg.Identity, cfg.Paths.Cert, cfg.Paths.Key)

	log.L().Info("Requesting certificate from issuance agent",
		"command", cfg.Issuer.Command, "identity", cfg.Identity)

	output, err := runner.Run(cfg.Issuer.Command, args...)
	if err != nil {
		return fmt.Errorf("issuance agent failed: %w", err)
	}
	log.L().Debug("Issuance agent finished", "output", output)
	return nil
}
