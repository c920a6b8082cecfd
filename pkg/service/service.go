package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go_keystore_rotation/pkg/log"
	"go_keystore_rotation/pkg/task"
)

// Stop asks the service manager to stop the named service.
func Stop(runner task.Runner, name string) error {
	log.L().Info("Stopping service", "service", name)
	if _, err := runner.Run("systemctl", "stop", name); err != nil {
		return fmt.Errorf("failed to stop service %s: %w", name, err)
	}
	return nil
}

// Start asks the service manager to start the named service.
func Start(runner task.Runner, name string) error {
	log.L().Info("Starting service", "service", name)
	if _, err := runner.Run("systemctl", "start", name); err != nil {
		return fmt.Errorf("failed to start service %s: %w", name, err)
	}
	return nil
}

// WaitInactive polls until the service reports inactive. The trust store
// must not be rewritten underneath a running service.
func WaitInactive(runner task.Runner, name string, timeout time.Duration) error {
	return waitForState(runner, name, "inactive", timeout)
}

// WaitActive polls until the service reports active after a restart.
func WaitActive(runner task.Runner, name string, timeout time.Duration) error {
	return waitForState(runner, name, "active", timeout)
}

func waitForState(runner task.Runner, name, want string, timeout time.Duration) error {
	log.L().Info("Waiting for service state", "service", name, "state", want)
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		if state := currentState(runner, name); state == want {
			log.L().Info("Service reached state", "service", name, "state", want)
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout expired waiting for service %s to become %s", name, want)
		case <-ticker.C:
		}
	}
}

func currentState(runner task.Runner, name string) string {
	// `systemctl is-active` exits non-zero for any state other than
	// active; the state name is still printed on stdout.
	output, _ := runner.Run("systemctl", "is-active", name)
	return strings.TrimSpace(output)
}
