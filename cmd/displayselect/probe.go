package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jrywalker/displayselect/internal/format"
	"github.com/jrywalker/displayselect/internal/model"
	"github.com/jrywalker/displayselect/internal/xrandr"
)

var probeOpts struct {
	format string
	all    bool
}

// probeCmd lists outputs without changing anything.
var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "List outputs and their modes without applying anything",
	Long: `Probe the display server and print the recognized outputs with their
supported modes.

By default only connected outputs are shown, in a human-readable layout.

Examples:
  # Connected outputs with modes
  displayselect probe

  # Every output, including disconnected connectors
  displayselect probe --all

  # Machine-readable listing
  displayselect probe --format json

  # Pipe output names into a picker
  displayselect probe --format dmenu | dmenu -i`,
	RunE: runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)

	probeCmd.Flags().StringVarP(&probeOpts.format, "format", "f", "plain",
		"Output format (plain, json, dmenu)")
	probeCmd.Flags().BoolVarP(&probeOpts.all, "all", "a", false,
		"Include disconnected outputs")
}

func runProbe(cmd *cobra.Command, args []string) error {
	outputs, err := xrandr.NewProber().Probe(cmd.Context())
	if err != nil {
		return err
	}

	if !probeOpts.all {
		outputs = model.Connected(outputs)
	}

	return format.New(format.Type(probeOpts.format)).Format(os.Stdout, outputs)
}
