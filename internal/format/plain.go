package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/jrywalker/displayselect/internal/model"
)

// PlainFormatter writes a human-readable report: one header line per
// output followed by its indented modes.
type PlainFormatter struct{}

// Format writes the report.
func (f *PlainFormatter) Format(w io.Writer, outputs []model.Output) error {
	for _, o := range outputs {
		if _, err := fmt.Fprintln(w, headerLine(o)); err != nil {
			return err
		}
		for _, mode := range o.Modes {
			if _, err := fmt.Fprintf(w, "   %s\n", mode); err != nil {
				return err
			}
		}
	}
	return nil
}

func headerLine(o model.Output) string {
	parts := []string{o.Name}
	if o.Connected {
		parts = append(parts, "connected")
	} else {
		parts = append(parts, "disconnected")
	}
	if o.Primary {
		parts = append(parts, "primary")
	}
	return strings.Join(parts, " ")
}
