// Package xrandr adapts the xrandr command line tool for probing
// connected outputs and applying display arrangements.
package xrandr

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"unicode"

	"github.com/jrywalker/displayselect/internal/model"
)

// ProbeError represents a failure to enumerate outputs.
type ProbeError struct {
	Message string
	Err     error
}

func (e *ProbeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}

// Prober enumerates outputs by running `xrandr --query`.
type Prober struct {
	command string
}

// NewProber creates a Prober using the xrandr binary on PATH.
func NewProber() *Prober {
	return &Prober{command: "xrandr"}
}

// Probe runs the query and parses the report. It fails when no display
// server is reachable, surfacing xrandr's own error.
func (p *Prober) Probe(ctx context.Context) ([]model.Output, error) {
	cmd := exec.CommandContext(ctx, p.command, "--query")
	out, err := cmd.Output()
	if err != nil {
		msg := "failed to execute " + p.command + " --query"
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			msg += ": " + strings.TrimSpace(string(exitErr.Stderr))
		}
		return nil, &ProbeError{Message: msg, Err: err}
	}

	return ParseQuery(out)
}

// ParseQuery parses `xrandr --query` output into outputs with their
// mode lines in reported order.
//
// The report interleaves output headers with indented mode lines:
//
//	eDP-1 connected primary 1920x1080+0+0 (normal left ...) 344mm x 194mm
//	   1920x1080     60.01*+  59.97
//	   1600x900      60.00
//	HDMI-1 disconnected (normal left ...)
func ParseQuery(data []byte) ([]model.Output, error) {
	var (
		outputs []model.Output
		current *model.Output
	)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		if unicode.IsSpace(rune(line[0])) {
			// Mode line belonging to the most recent output header.
			if current == nil {
				continue
			}
			fields := strings.Fields(line)
			if len(fields) == 0 {
				continue
			}
			res, err := parseModeToken(fields[0])
			if err != nil {
				return nil, &ProbeError{Message: "malformed mode line " + strings.TrimSpace(line), Err: err}
			}
			current.Modes = append(current.Modes, res)
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		switch fields[1] {
		case "connected", "disconnected":
			outputs = append(outputs, model.Output{
				Name:      fields[0],
				Connected: fields[1] == "connected",
				Primary:   len(fields) > 2 && fields[2] == "primary",
			})
			current = &outputs[len(outputs)-1]
		default:
			// Screen summary line or other header; not an output.
			current = nil
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, &ProbeError{Message: "failed to read xrandr report", Err: err}
	}

	return outputs, nil
}

// parseModeToken parses the leading WxH field of a mode line.
// Interlaced modes carry a trailing "i" (e.g. 1920x1080i).
func parseModeToken(token string) (model.Resolution, error) {
	return model.ParseResolution(strings.TrimSuffix(token, "i"))
}
