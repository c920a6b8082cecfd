package state

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the rotation state file kept inside the workspace directory.
const FileName = "rotation-state.yaml"

// State records what the last successful rotation installed. The
// OriginalBackupDone marker decides whether the next install writes the
// one-time original backup or the rolling backup.
type State struct {
	// Fingerprint is the hex SHA-256 of the last installed certificate.
	Fingerprint string `yaml:"fingerprint"`
	// OriginalBackupDone is set once the one-time store backup exists.
	OriginalBackupDone bool `yaml:"original_backup_done"`
	// RotatedAt is the time of the last successful install.
	RotatedAt time.Time `yaml:"rotated_at"`
}

// Path returns the state file path for a workspace directory.
func Path(workspaceDir string) string {
	return filepath.Join(workspaceDir, FileName)
}

// Load reads the state file. A missing file yields a zero state, not an
// error: the first run of a fresh system has no record and must proceed.
func Load(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &State{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	st := &State{}
	if err := yaml.Unmarshal(data, st); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}
	return st, nil
}

// Save writes the state file, creating the workspace directory if needed.
func (s *State) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}
