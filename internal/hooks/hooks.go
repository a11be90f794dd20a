// Package hooks runs best-effort refresh commands after an arrangement
// is applied: wallpaper, key remaps, notification daemon restart.
package hooks

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// hookTimeout bounds each hook so a wedged command cannot hang the
// whole invocation.
const hookTimeout = 10 * time.Second

// Hook is a named fire-and-forget post-apply action.
type Hook struct {
	Name    string
	Command []string
}

// NewHook builds a Hook from a command string like "pkill dunst".
// Returns a zero Hook when the command is empty.
func NewHook(name, command string) Hook {
	return Hook{Name: name, Command: strings.Fields(command)}
}

// Runner executes hooks sequentially. Each failure is logged and
// swallowed so one broken hook never blocks the rest, and none of them
// surface to the caller.
type Runner struct {
	logger *slog.Logger
	hooks  []Hook
}

// NewRunner creates a Runner over the given hooks. Hooks with empty
// commands are skipped.
func NewRunner(logger *slog.Logger, hooks []Hook) *Runner {
	return &Runner{logger: logger, hooks: hooks}
}

// Run fires every hook in order.
func (r *Runner) Run(ctx context.Context) {
	for _, h := range r.hooks {
		if len(h.Command) == 0 {
			continue
		}

		hctx, cancel := context.WithTimeout(ctx, hookTimeout)
		cmd := exec.CommandContext(hctx, h.Command[0], h.Command[1:]...)
		err := cmd.Run()
		cancel()

		if err != nil {
			r.logger.Warn("post-apply hook failed", "hook", h.Name, "error", err)
			continue
		}
		r.logger.Debug("post-apply hook finished", "hook", h.Name)
	}
}

// DetectWallpaperCommand returns the wallpaper refresh command for this
// session, probing known setters on PATH.
func DetectWallpaperCommand() string {
	home, err := os.UserHomeDir()
	if err == nil {
		fehbg := filepath.Join(home, ".fehbg")
		if info, statErr := os.Stat(fehbg); statErr == nil && !info.IsDir() {
			return fehbg
		}
	}

	if _, err := exec.LookPath("nitrogen"); err == nil {
		return "nitrogen --restore"
	}
	if _, err := exec.LookPath("setbg"); err == nil {
		return "setbg"
	}

	return ""
}
