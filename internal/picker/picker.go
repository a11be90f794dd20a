// Package picker presents single-choice menus to the user.
package picker

import (
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"strings"
)

// ErrCancelled is returned when the user dismisses a prompt without
// choosing. It is a normal outcome, not an application bug.
var ErrCancelled = errors.New("selection cancelled")

// Picker presents a prompt with a list of choices and returns the
// selected one. Each call blocks until the user answers or cancels.
type Picker interface {
	Pick(ctx context.Context, prompt string, choices []string) (string, error)
}

// Detect returns a Picker for this session. A configured command wins;
// otherwise known dmenu-protocol launchers are probed on PATH, falling
// back to the built-in terminal picker.
func Detect(command string, logger *slog.Logger) Picker {
	if command != "" {
		return NewCommandPicker(command)
	}

	for _, candidate := range []string{
		"dmenu -i",
		"fuzzel -d",
		"rofi -dmenu",
		"wmenu -i",
	} {
		bin := strings.Fields(candidate)[0]
		if _, err := exec.LookPath(bin); err == nil {
			logger.Debug("detected picker", "command", candidate)
			return NewCommandPicker(candidate)
		}
	}

	logger.Debug("no picker command found, using built-in terminal picker")
	return NewTerminalPicker()
}
