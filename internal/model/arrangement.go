package model

import "fmt"

// Direction places one output relative to another.
type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// ParseDirection parses a picker answer into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionLeft:
		return DirectionLeft, nil
	case DirectionRight:
		return DirectionRight, nil
	default:
		return "", fmt.Errorf("invalid direction %q: expected left or right", s)
	}
}

// Opposite returns the complementary direction.
func (d Direction) Opposite() Direction {
	if d == DirectionLeft {
		return DirectionRight
	}
	return DirectionLeft
}

// Arrangement is the chosen display topology. Exactly one value is
// constructed per run from the prober snapshot and the user's choices,
// consumed once by the applier, and never mutated.
type Arrangement interface {
	arrangement()
}

// Single drives one output and turns every other connected output off.
type Single struct {
	Output string

	// Resolution to set; the zero value selects the automatic mode.
	Resolution Resolution

	// Off lists the other connected outputs to disable explicitly.
	Off []string

	// Auto marks the fast path taken when only one output was
	// connected and no prompt was shown.
	Auto bool
}

// Mirrored shows the same image on both outputs, with the secondary
// scaled to cover the primary's resolution.
type Mirrored struct {
	Primary   string
	Secondary string

	PrimaryResolution   Resolution
	SecondaryResolution Resolution

	ScaleX float64
	ScaleY float64
}

// Extended places the secondary output beside the primary to form one
// larger desktop.
type Extended struct {
	Primary   string
	Secondary string

	PrimaryResolution Resolution

	// Direction is the secondary's side relative to the primary.
	Direction Direction
}

// ExtendedTriple places a secondary and tertiary output on opposite
// sides of the primary, all at their automatic modes.
type ExtendedTriple struct {
	Primary   string
	Secondary string
	Tertiary  string

	SecondaryDirection Direction
}

// TertiaryDirection is always the complement of the secondary's side.
func (t ExtendedTriple) TertiaryDirection() Direction {
	return t.SecondaryDirection.Opposite()
}

// Manual defers the whole arrangement to an external interactive tool;
// no geometry is computed here.
type Manual struct{}

func (Single) arrangement()         {}
func (Mirrored) arrangement()       {}
func (Extended) arrangement()       {}
func (ExtendedTriple) arrangement() {}
func (Manual) arrangement()         {}

// NewMirrored computes the scale factors that stretch the secondary's
// mode over the primary's. Non-positive dimensions are rejected so a
// degenerate scale is never produced.
func NewMirrored(primary, secondary string, primaryRes, secondaryRes Resolution) (Mirrored, error) {
	if primaryRes.Width <= 0 || primaryRes.Height <= 0 {
		return Mirrored{}, fmt.Errorf("primary resolution %s: dimensions must be positive", primaryRes)
	}
	if secondaryRes.Width <= 0 || secondaryRes.Height <= 0 {
		return Mirrored{}, fmt.Errorf("secondary resolution %s: dimensions must be positive", secondaryRes)
	}

	return Mirrored{
		Primary:             primary,
		Secondary:           secondary,
		PrimaryResolution:   primaryRes,
		SecondaryResolution: secondaryRes,
		ScaleX:              float64(primaryRes.Width) / float64(secondaryRes.Width),
		ScaleY:              float64(primaryRes.Height) / float64(secondaryRes.Height),
	}, nil
}
