// Package virtual contains built-in sensors without hardware behind them.
// They stand in for a camera when no real sensor is found.
package virtual

import (
	"github.com/go-home-io/imager/systems/registry"
)

// Entries returns virtual sensor table.
// The first entry is the default virtual sensor.
func Entries() []registry.Entry {
	entries := make([]registry.Entry, 0, len(profiles))
	for _, v := range profiles {
		entries = append(entries, registry.Entry{GUID: v.guid, Factory: newFactory(v)})
	}

	return entries
}

