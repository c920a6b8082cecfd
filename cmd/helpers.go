package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// confirmInput is swapped out in tests.
var confirmInput io.Reader = os.Stdin

// confirmAction asks the operator to approve a disruptive action before it
// runs. With --yes the prompt is skipped and the approval is narrated
// instead, so scheduled runs stay non-interactive.
func confirmAction(action string) error {
	if assumeYes {
		fmt.Printf("Proceeding without prompt (--yes): %s\n", action)
		return nil
	}

	fmt.Printf("\nAbout to %s.\n", action)
	fmt.Print("Type 'yes' to continue, anything else to abort: ")

	reader := bufio.NewReader(confirmInput)
	input, _ := reader.ReadString('\n')
	if strings.TrimSpace(input) != "yes" {
		return fmt.Errorf("aborted: %s was not confirmed", action)
	}
	return nil
}
