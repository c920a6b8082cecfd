package task

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

// LocalRunner runs collaborator commands and file operations on the local
// machine.
type LocalRunner struct{}

// Run executes a local command and returns its combined output.
func (r *LocalRunner) Run(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), fmt.Errorf("failed to run %s: %w\n%s", name, err, output)
	}
	return string(output), nil
}

// ReadFile returns the contents of a local file.
func (r *LocalRunner) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Exists reports whether a non-empty file exists at path.
func (r *LocalRunner) Exists(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.Size() > 0, nil
}

// Copy duplicates a file, preserving its mode.
func (r *LocalRunner) Copy(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer in.Close()

	stat, err := in.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat source file: %w", err)
	}

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, stat.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy file content: %w", err)
	}
	return out.Close()
}

// Remove deletes a file. A missing file is not an error.
func (r *LocalRunner) Remove(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (r *LocalRunner) Close() error {
	return nil
}
