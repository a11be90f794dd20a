// Package format renders probed outputs for the probe subcommand.
package format

import (
	"io"

	"github.com/jrywalker/displayselect/internal/model"
)

// Type represents an output format type.
type Type string

const (
	TypePlain Type = "plain"
	TypeJSON  Type = "json"
	TypeDmenu Type = "dmenu"
)

// Formatter writes probed outputs in a particular representation.
type Formatter interface {
	Format(w io.Writer, outputs []model.Output) error
}

// New creates a formatter for the specified format type.
func New(t Type) Formatter {
	switch t {
	case TypeJSON:
		return &JSONFormatter{}
	case TypeDmenu:
		return &DmenuFormatter{}
	case TypePlain:
		fallthrough
	default:
		return &PlainFormatter{}
	}
}
