package bundle

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path"

	"github.com/google/uuid"

	"go_keystore_rotation/pkg/config"
	"go_keystore_rotation/pkg/log"
	"go_keystore_rotation/pkg/task"
)

// Archive is a transient password-protected PKCS#12 bundle holding the new
// key and certificate under the store alias. Its lifetime is scoped to a
// single rotation: Remove must run on every exit path of the install.
type Archive struct {
	Path     string
	Password string
}

// NewArchive picks a collision-free path in dir and generates a one-off
// password. The password is never persisted.
func NewArchive(dir, alias string) (*Archive, error) {
	password, err := randomPassword()
	if err != nil {
		return nil, err
	}
	return &Archive{
		Path:     path.Join(dir, fmt.Sprintf("%s-%s.p12", alias, uuid.NewString())),
		Password: password,
	}, nil
}

// Export packages the certificate and key into the archive via the
// external openssl tool on the controller host.
func Export(runner task.Runner, cfg *config.Config, a *Archive) error {
	log.L().Info("Packaging certificate and key into transient archive", "path", a.Path)
	_, err := runner.Run(cfg.Tools.OpenSSL,
		"pkcs12", "-export",
		"-in", cfg.Paths.Cert,
		"-inkey", cfg.Paths.Key,
		"-out", a.Path,
		"-name", cfg.Store.Alias,
		"-password", "pass:"+a.Password,
	)
	if err != nil {
		return fmt.Errorf("archive export failed: %w", err)
	}
	return nil
}

// Remove deletes the archive from the controller host. A missing archive
// is fine: cleanup runs unconditionally.
func Remove(runner task.Runner, a *Archive) {
	if err := runner.Remove(a.Path); err != nil {
		log.L().Warn("Failed to remove transient archive", "path", a.Path, "error", err)
	}
}

func randomPassword() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate archive password: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
