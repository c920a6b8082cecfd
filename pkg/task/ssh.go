package task

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"
)

// SSHRunner runs collaborator commands and file operations on a remote
// controller host over SSH.
type SSHRunner struct {
	client *ssh.Client
}

// NewSSHRunner connects to the remote host with public-key auth.
func NewSSHRunner(host, user, keyPath string) (Runner, error) {
	key, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read private key: %w", err)
	}

	signer, err := ssh.ParsePrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("unable to parse private key: %w", err)
	}

	config := &ssh.ClientConfig{
		User: user,
		Auth: []ssh.AuthMethod{
			ssh.PublicKeys(signer),
		},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         10 * time.Second,
	}

	client, err := ssh.Dial("tcp", host+":22", config)
	if err != nil {
		return nil, fmt.Errorf("unable to connect: %w", err)
	}

	return &SSHRunner{client: client}, nil
}

// Run executes a command on the remote host.
func (r *SSHRunner) Run(name string, args ...string) (string, error) {
	session, err := r.client.NewSession()
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	defer session.Close()

	output, err := session.CombinedOutput(shellCommand(name, args...))
	if err != nil {
		return string(output), fmt.Errorf("failed to run %s: %w\n%s", name, err, output)
	}
	return string(output), nil
}

// ReadFile returns the contents of a remote file.
func (r *SSHRunner) ReadFile(path string) ([]byte, error) {
	session, err := r.client.NewSession()
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	defer session.Close()

	var stdout, stderr bytes.Buffer
	session.Stdout = &stdout
	session.Stderr = &stderr

	if err := session.Run(shellCommand("cat", path)); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w\n%s", path, err, stderr.String())
	}
	return stdout.Bytes(), nil
}

// Exists reports whether a non-empty file exists at path on the remote host.
func (r *SSHRunner) Exists(path string) (bool, error) {
	session, err := r.client.NewSession()
	if err != nil {
		return false, fmt.Errorf("failed to create session: %w", err)
	}
	defer session.Close()

	err = session.Run(shellCommand("test", "-s", path))
	if err == nil {
		return true, nil
	}
	var exitErr *ssh.ExitError
	if errors.As(err, &exitErr) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %s: %w", path, err)
}

// Copy duplicates a file on the remote host.
func (r *SSHRunner) Copy(src, dest string) error {
	if _, err := r.Run("cp", "-f", src, dest); err != nil {
		return err
	}
	return nil
}

// Remove deletes a remote file. A missing file is not an error.
func (r *SSHRunner) Remove(path string) error {
	if _, err := r.Run("rm", "-f", path); err != nil {
		return err
	}
	return nil
}

func (r *SSHRunner) Close() error {
	return r.client.Close()
}

// shellCommand builds a single-quoted shell command line from a binary name
// and its arguments.
func shellCommand(name string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	for _, p := range append([]string{name}, args...) {
		parts = append(parts, "'"+strings.ReplaceAll(p, "'", `'\''`)+"'")
	}
	return strings.Join(parts, " ")
}
