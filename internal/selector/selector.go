// Package selector implements the interactive arrangement selection
// state machine. It is pure over the Prober and Picker interfaces so
// every prompt sequence can be exercised with fakes.
package selector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jrywalker/displayselect/internal/model"
	"github.com/jrywalker/displayselect/internal/picker"
)

// ErrNoDisplays is returned when the prober reports no connected
// outputs. Fail fast rather than guessing a fallback.
var ErrNoDisplays = errors.New("no connected displays detected")

// Menu entries offered alongside the output names on the first prompt.
const (
	ChoiceMultiMonitor = "multi-monitor"
	ChoiceManual       = "manual selection"
)

// Prober reports the currently attached display outputs.
type Prober interface {
	Probe(ctx context.Context) ([]model.Output, error)
}

// Config holds the resolution policy the selector applies.
type Config struct {
	// InternalOutput is the identifier of the built-in panel.
	InternalOutput string

	// CloseResolution is the preferred mode for the internal panel
	// ("close-up" work on the laptop screen).
	CloseResolution model.Resolution

	// FarResolution is the primary's mode when extending across two
	// screens.
	FarResolution model.Resolution
}

// Selector turns a prober snapshot and a sequence of picker answers
// into one Arrangement.
type Selector struct {
	cfg    Config
	prober Prober
	picker picker.Picker
	logger *slog.Logger
}

// New creates a Selector.
func New(cfg Config, prober Prober, pick picker.Picker, logger *slog.Logger) *Selector {
	return &Selector{cfg: cfg, prober: prober, picker: pick, logger: logger}
}

// promptState enumerates the suspension points of the prompt sequence.
type promptState int

const (
	stateChooseMode promptState = iota
	stateChooseMirror
	stateChoosePrimary
	stateChooseSecondary
	stateChooseDirection
	stateChooseTertiary
)

// Select probes the outputs and walks the prompt sequence. A single
// connected output is configured without any prompt. Cancelling any
// prompt aborts with picker.ErrCancelled and no arrangement.
func (s *Selector) Select(ctx context.Context) (model.Arrangement, error) {
	outputs, err := s.prober.Probe(ctx)
	if err != nil {
		return nil, err
	}

	connected := model.Connected(outputs)
	s.logger.Debug("probed outputs", "total", len(outputs), "connected", len(connected))

	switch len(connected) {
	case 0:
		return nil, ErrNoDisplays
	case 1:
		single := s.single(connected[0], nil)
		single.Auto = true
		return single, nil
	default:
		return s.interactive(ctx, connected)
	}
}

// single builds the one-output arrangement: the close-up mode for the
// internal panel, automatic mode otherwise, everything else off.
func (s *Selector) single(out model.Output, off []string) model.Single {
	var res model.Resolution
	if out.Name == s.cfg.InternalOutput {
		res = s.cfg.CloseResolution
	}
	return model.Single{
		Output:     out.Name,
		Resolution: res,
		Off:        off,
	}
}

// interactive runs the prompt state machine over two or more connected
// outputs.
func (s *Selector) interactive(ctx context.Context, connected []model.Output) (model.Arrangement, error) {
	var (
		state     = stateChooseMode
		primary   model.Output
		secondary model.Output
		direction model.Direction
	)

	for {
		switch state {
		case stateChooseMode:
			choices := append(model.Names(connected), ChoiceMultiMonitor, ChoiceManual)
			selection, err := s.picker.Pick(ctx, "display arrangement", choices)
			if err != nil {
				return nil, err
			}

			switch selection {
			case ChoiceManual:
				return model.Manual{}, nil
			case ChoiceMultiMonitor:
				if len(connected) == 2 {
					primary, secondary = connected[0], connected[1]
					state = stateChooseMirror
				} else {
					state = stateChoosePrimary
				}
			default:
				out, ok := findOutput(connected, selection)
				if !ok {
					return nil, fmt.Errorf("picker returned unknown output %q", selection)
				}
				return s.single(out, allExcept(connected, out.Name)), nil
			}

		case stateChooseMirror:
			selection, err := s.picker.Pick(ctx, "mirror displays?", []string{"yes", "no"})
			if err != nil {
				return nil, err
			}
			if selection == "yes" {
				secondaryRes, ok := secondary.LastMode()
				if !ok {
					return nil, fmt.Errorf("no modes reported for output %s", secondary.Name)
				}
				mirrored, err := model.NewMirrored(primary.Name, secondary.Name, s.cfg.CloseResolution, secondaryRes)
				if err != nil {
					return nil, err
				}
				return mirrored, nil
			}
			state = stateChooseDirection

		case stateChoosePrimary:
			selection, err := s.picker.Pick(ctx, "primary display", model.Names(connected))
			if err != nil {
				return nil, err
			}
			out, ok := findOutput(connected, selection)
			if !ok {
				return nil, fmt.Errorf("picker returned unknown output %q", selection)
			}
			primary = out
			state = stateChooseSecondary

		case stateChooseSecondary:
			remaining := allExcept(connected, primary.Name)
			selection, err := s.picker.Pick(ctx, "secondary display", remaining)
			if err != nil {
				return nil, err
			}
			out, ok := findOutput(connected, selection)
			if !ok {
				return nil, fmt.Errorf("picker returned unknown output %q", selection)
			}
			secondary = out
			state = stateChooseDirection

		case stateChooseDirection:
			prompt := fmt.Sprintf("side of %s for %s", primary.Name, secondary.Name)
			selection, err := s.picker.Pick(ctx, prompt, []string{string(model.DirectionLeft), string(model.DirectionRight)})
			if err != nil {
				return nil, err
			}
			direction, err = model.ParseDirection(selection)
			if err != nil {
				return nil, err
			}
			if len(connected) == 2 {
				return model.Extended{
					Primary:           primary.Name,
					Secondary:         secondary.Name,
					PrimaryResolution: s.cfg.FarResolution,
					Direction:         direction,
				}, nil
			}
			state = stateChooseTertiary

		case stateChooseTertiary:
			remaining := allExcept(connected, primary.Name, secondary.Name)
			selection, err := s.picker.Pick(ctx, "tertiary display", remaining)
			if err != nil {
				return nil, err
			}
			out, ok := findOutput(connected, selection)
			if !ok {
				return nil, fmt.Errorf("picker returned unknown output %q", selection)
			}
			// Outputs beyond the chosen three keep their current state.
			return model.ExtendedTriple{
				Primary:            primary.Name,
				Secondary:          secondary.Name,
				Tertiary:           out.Name,
				SecondaryDirection: direction,
			}, nil
		}
	}
}

func findOutput(outputs []model.Output, name string) (model.Output, bool) {
	for _, o := range outputs {
		if o.Name == name {
			return o, true
		}
	}
	return model.Output{}, false
}

// allExcept returns the names of outputs not in the excluded set,
// preserving order.
func allExcept(outputs []model.Output, exclude ...string) []string {
	excluded := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		excluded[name] = true
	}

	var names []string
	for _, o := range outputs {
		if !excluded[o.Name] {
			names = append(names, o.Name)
		}
	}
	return names
}
