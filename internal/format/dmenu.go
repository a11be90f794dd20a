package format

import (
	"fmt"
	"io"

	"github.com/jrywalker/displayselect/internal/model"
)

// DmenuFormatter writes one line per output for piping into dmenu-style
// pickers: the name, then the first reported mode when present.
type DmenuFormatter struct{}

// Format writes the lines.
func (f *DmenuFormatter) Format(w io.Writer, outputs []model.Output) error {
	for _, o := range outputs {
		line := o.Name
		if len(o.Modes) > 0 {
			line = fmt.Sprintf("%s\t%s", o.Name, o.Modes[0])
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
