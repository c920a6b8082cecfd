package task

// Runner abstracts the controller host: it runs external collaborator
// commands and performs the file operations the rotation needs on the
// host where the trust store lives.
type Runner interface {
	// Run executes a command and returns its combined output.
	Run(name string, args ...string) (string, error)
	// ReadFile returns the contents of a file on the controller host.
	ReadFile(path string) ([]byte, error)
	// Exists reports whether a non-empty file exists at path.
	Exists(path string) (bool, error)
	// Copy duplicates a file on the controller host.
	Copy(src, dest string) error
	// Remove deletes a file. Removing a missing file is not an error.
	Remove(path string) error
	Close() error
}

// NewRunner returns a runner for the controller host. An empty host means
// the controller is local. In dry-run mode a logging no-op runner is
// returned instead.
func NewRunner(dryRun bool, host, user, keyPath string) (Runner, error) {
	if dryRun {
		target := host
		if target == "" {
			target = "localhost"
		}
		return &DryRunRunner{Host: target}, nil
	}
	if host != "" {
		return NewSSHRunner(host, user, keyPath)
	}
	return &LocalRunner{}, nil
}
