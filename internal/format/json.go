package format

import (
	"encoding/json"
	"io"

	"github.com/jrywalker/displayselect/internal/model"
)

// JSONFormatter writes outputs as a JSON array for scripting.
type JSONFormatter struct{}

// Format writes indented JSON.
func (f *JSONFormatter) Format(w io.Writer, outputs []model.Output) error {
	if outputs == nil {
		outputs = []model.Output{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(outputs)
}
