// Package model defines the core data structures for displayselect.
package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Resolution is a display mode size in pixels.
// The zero value means "use the output's automatic mode".
type Resolution struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ParseResolution parses a "WxH" mode string as reported by the prober.
// Both dimensions must be positive.
func ParseResolution(s string) (Resolution, error) {
	w, h, ok := strings.Cut(strings.TrimSpace(s), "x")
	if !ok {
		return Resolution{}, fmt.Errorf("invalid resolution %q: expected WxH", s)
	}

	width, err := strconv.Atoi(w)
	if err != nil {
		return Resolution{}, fmt.Errorf("invalid resolution width %q: %w", w, err)
	}

	height, err := strconv.Atoi(h)
	if err != nil {
		return Resolution{}, fmt.Errorf("invalid resolution height %q: %w", h, err)
	}

	if width <= 0 || height <= 0 {
		return Resolution{}, fmt.Errorf("invalid resolution %q: dimensions must be positive", s)
	}

	return Resolution{Width: width, Height: height}, nil
}

// String renders the resolution in the prober's WxH form.
func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// IsZero reports whether the resolution is unset (automatic mode).
func (r Resolution) IsZero() bool {
	return r.Width == 0 && r.Height == 0
}
