// Package main provides the CLI entrypoint for displayselect.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/jrywalker/displayselect/internal/config"
	"github.com/jrywalker/displayselect/internal/hooks"
	"github.com/jrywalker/displayselect/internal/model"
	"github.com/jrywalker/displayselect/internal/notify"
	"github.com/jrywalker/displayselect/internal/picker"
	"github.com/jrywalker/displayselect/internal/selector"
	"github.com/jrywalker/displayselect/internal/xrandr"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
	}
	logger *slog.Logger
)

// manualTool is the external GUI used for the manual-selection handoff.
const manualTool = "arandr"

// rootCmd represents the base command. Without a subcommand it runs the
// interactive arrangement selector.
var rootCmd = &cobra.Command{
	Use:   "displayselect",
	Short: "Interactive display arrangement selector for X11",
	Long: `displayselect probes the connected monitors with xrandr and asks, via a
dmenu-style picker, how they should be arranged: a single screen, scaled
mirroring, side-by-side extension, or a manual handoff to arandr.

The chosen arrangement is applied with one composed xrandr call, after
which the wallpaper, key remaps, and notification daemon are refreshed.

A single connected monitor is configured directly without any prompt.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
	RunE: runSelect,
}

// Execute runs the root command.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime)),
	); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/displayselect/config.toml)")
}

// runSelect drives the select → apply → hooks pipeline.
func runSelect(cmd *cobra.Command, args []string) error {
	closeRes, err := cfg.Display.CloseRes()
	if err != nil {
		return err
	}
	farRes, err := cfg.Display.FarRes()
	if err != nil {
		return err
	}

	sel := selector.New(
		selector.Config{
			InternalOutput:  cfg.Display.InternalOutput,
			CloseResolution: closeRes,
			FarResolution:   farRes,
		},
		xrandr.NewProber(),
		picker.Detect(cfg.Picker.Command, logger),
		logger,
	)

	pipeline := &selector.Pipeline{
		Selector: sel,
		Applier:  xrandr.NewApplier(cfg.Display.DPI),
		Hooks:    hooks.NewRunner(logger, hookList()),
		Notify:   notify.Send,
		Logger:   logger,
	}

	arrangement, err := pipeline.Run(cmd.Context())
	if err != nil {
		if errors.Is(err, picker.ErrCancelled) {
			// User backed out; exit non-zero without error noise.
			logger.Debug("selection cancelled by user")
			os.Exit(1)
		}
		return err
	}

	if _, ok := arrangement.(model.Manual); ok {
		return launchManual()
	}
	return nil
}

// hookList assembles the post-apply hooks from config, auto-detecting
// the wallpaper command when unset.
func hookList() []hooks.Hook {
	wallpaper := cfg.Hooks.Wallpaper
	if wallpaper == "" {
		wallpaper = hooks.DetectWallpaperCommand()
	}

	return []hooks.Hook{
		hooks.NewHook("wallpaper", wallpaper),
		hooks.NewHook("remaps", cfg.Hooks.Remaps),
		hooks.NewHook("notifications", cfg.Hooks.Notifications),
	}
}

// launchManual starts the external arrangement GUI and returns without
// waiting so the tool outlives this process.
func launchManual() error {
	cmd := exec.Command(manualTool)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch %s: %w", manualTool, err)
	}
	logger.Debug("launched manual arrangement tool", "tool", manualTool, "pid", cmd.Process.Pid)
	return nil
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout stays clean for probe output.
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}
