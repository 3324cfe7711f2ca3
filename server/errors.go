package server

import "fmt"

// ErrBadPattern defines invalid parameter name pattern.
type ErrBadPattern struct {
	Pattern string
}

// Error formats output.
func (e *ErrBadPattern) Error() string {
	return fmt.Sprintf("pattern %s is invalid", e.Pattern)
}

// ErrUnknownPowerLevel defines unknown power level name.
type ErrUnknownPowerLevel struct {
	Name string
}

// Error formats output.
func (e *ErrUnknownPowerLevel) Error() string {
	return fmt.Sprintf("power level %s is unknown", e.Name)
}
