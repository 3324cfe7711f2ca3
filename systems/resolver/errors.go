package resolver

import (
	"fmt"

	"github.com/go-home-io/imager/plugins/imager/enums"
)

// ErrNoDeviceAtPosition defines board layout without a sensor at requested position.
type ErrNoDeviceAtPosition struct {
	Position enums.Position
}

// Error formats output.
func (e *ErrNoDeviceAtPosition) Error() string {
	return "no sensor at position " + e.Position.String()
}

// ErrNoSuchDeviceIndex defines enumeration index outside of discovered imagers.
type ErrNoSuchDeviceIndex struct {
	Index int
	Count int
}

// Error formats output.
func (e *ErrNoSuchDeviceIndex) Error() string {
	return fmt.Sprintf("imager index %d is out of range, %d imagers found", e.Index, e.Count)
}
