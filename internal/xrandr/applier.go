package xrandr

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/jrywalker/displayselect/internal/model"
)

// ApplyError reports a failed xrandr invocation, carrying the tool's
// stderr verbatim.
type ApplyError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *ApplyError) Error() string {
	msg := "xrandr " + strings.Join(e.Args, " ") + " failed"
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	} else if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ApplyError) Unwrap() error {
	return e.Err
}

// Applier realizes arrangements with a single xrandr invocation.
type Applier struct {
	command string
	dpi     int
}

// NewApplier creates an Applier. A dpi of 0 omits the --dpi flag.
func NewApplier(dpi int) *Applier {
	return &Applier{command: "xrandr", dpi: dpi}
}

// Apply issues one composed xrandr call for the arrangement. The call
// is not retried; a failure leaves the display state wherever xrandr
// left it.
func (a *Applier) Apply(ctx context.Context, arrangement model.Arrangement) error {
	args, err := Args(arrangement, a.dpi)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, a.command, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return &ApplyError{
			Args:   args,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	return nil
}

// Args translates an arrangement into a single xrandr argument list.
// Outputs the arrangement turns off are listed with --off; outputs it
// never mentions are left untouched.
func Args(arrangement model.Arrangement, dpi int) ([]string, error) {
	var args []string

	switch v := arrangement.(type) {
	case model.Single:
		args = append(args, "--output", v.Output)
		args = append(args, modeArgs(v.Resolution)...)
		args = append(args, "--scale", "1.0x1.0")
		for _, name := range v.Off {
			args = append(args, "--output", name, "--off")
		}

	case model.Mirrored:
		if v.ScaleX <= 0 || v.ScaleY <= 0 {
			return nil, fmt.Errorf("mirrored arrangement has degenerate scale %gx%g", v.ScaleX, v.ScaleY)
		}
		args = append(args, "--output", v.Primary)
		args = append(args, modeArgs(v.PrimaryResolution)...)
		args = append(args, "--scale", "1.0x1.0")
		args = append(args, "--output", v.Secondary)
		args = append(args, modeArgs(v.SecondaryResolution)...)
		args = append(args, "--same-as", v.Primary)
		args = append(args, "--scale", formatScale(v.ScaleX, v.ScaleY))

	case model.Extended:
		args = append(args, "--output", v.Primary)
		args = append(args, modeArgs(v.PrimaryResolution)...)
		args = append(args, "--scale", "1.0x1.0")
		args = append(args, "--output", v.Secondary, "--auto", "--scale", "1.0x1.0")
		args = append(args, positionArg(v.Direction), v.Primary)

	case model.ExtendedTriple:
		args = append(args, "--output", v.Primary, "--auto", "--scale", "1.0x1.0")
		args = append(args, "--output", v.Secondary, "--auto", "--scale", "1.0x1.0")
		args = append(args, positionArg(v.SecondaryDirection), v.Primary)
		args = append(args, "--output", v.Tertiary, "--auto", "--scale", "1.0x1.0")
		args = append(args, positionArg(v.TertiaryDirection()), v.Primary)

	case model.Manual:
		return nil, fmt.Errorf("manual arrangements are applied by an external tool")

	default:
		return nil, fmt.Errorf("unsupported arrangement type %T", arrangement)
	}

	if dpi > 0 {
		args = append(args, "--dpi", strconv.Itoa(dpi))
	}

	return args, nil
}

// modeArgs selects --auto for the zero resolution, --mode otherwise.
func modeArgs(r model.Resolution) []string {
	if r.IsZero() {
		return []string{"--auto"}
	}
	return []string{"--mode", r.String()}
}

func positionArg(d model.Direction) string {
	if d == model.DirectionLeft {
		return "--left-of"
	}
	return "--right-of"
}

// formatScale renders scale factors the way xrandr expects them,
// keeping full float precision.
func formatScale(x, y float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64) + "x" + strconv.FormatFloat(y, 'g', -1, 64)
}
