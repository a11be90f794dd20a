package picker

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// CommandPicker drives any dmenu-protocol launcher (dmenu, rofi,
// fuzzel, wmenu): choices on stdin, one per line, selection on stdout,
// exit code 1 on escape.
type CommandPicker struct {
	command string
	args    []string
}

// NewCommandPicker creates a picker from a command string such as
// "dmenu -i" or "rofi -dmenu".
func NewCommandPicker(command string) *CommandPicker {
	parts := strings.Fields(command)
	if len(parts) == 0 {
		parts = []string{"dmenu"}
	}
	return &CommandPicker{command: parts[0], args: parts[1:]}
}

// Pick runs the launcher with the prompt and choices. An escaped or
// empty selection maps to ErrCancelled.
func (p *CommandPicker) Pick(ctx context.Context, prompt string, choices []string) (string, error) {
	args := append(append([]string{}, p.args...), "-p", prompt)

	cmd := exec.CommandContext(ctx, p.command, args...)
	cmd.Stdin = strings.NewReader(strings.Join(choices, "\n") + "\n")

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("picker command %s failed: %w", p.command, err)
	}

	selection := strings.TrimSpace(string(out))
	if selection == "" {
		return "", ErrCancelled
	}
	return selection, nil
}
