package model

// Output represents a display connector as reported by the prober.
type Output struct {
	Name      string `json:"name"`
	Connected bool   `json:"connected"`
	Primary   bool   `json:"primary"`

	// Modes holds the supported resolutions in the order the prober
	// reported them.
	Modes []Resolution `json:"modes,omitempty"`
}

// LastMode returns the final mode line reported by the prober, used as
// the representative mode when mirroring.
func (o Output) LastMode() (Resolution, bool) {
	if len(o.Modes) == 0 {
		return Resolution{}, false
	}
	return o.Modes[len(o.Modes)-1], true
}

// Connected filters outputs down to those with an attached display,
// preserving the prober's order.
func Connected(outputs []Output) []Output {
	var connected []Output
	for _, o := range outputs {
		if o.Connected {
			connected = append(connected, o)
		}
	}
	return connected
}

// Names returns the output identifiers in order.
func Names(outputs []Output) []string {
	names := make([]string, len(outputs))
	for i, o := range outputs {
		names[i] = o.Name
	}
	return names
}
