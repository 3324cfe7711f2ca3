package imager

import (
	"fmt"

	"github.com/go-home-io/imager/plugins/imager/enums"
)

// ErrInvalidGUID defines unparsable identifier error.
type ErrInvalidGUID struct {
	Value string
}

// Error formats output.
func (e *ErrInvalidGUID) Error() string {
	return fmt.Sprintf("invalid imager GUID %q", e.Value)
}

// ErrUnsupportedParameter defines parameter which driver doesn't handle.
type ErrUnsupportedParameter struct {
	Param enums.Parameter
}

// Error formats output.
func (e *ErrUnsupportedParameter) Error() string {
	return "parameter is not supported: " + e.Param.String()
}

// ErrParameterType defines parameter value of unexpected type.
type ErrParameterType struct {
	Param enums.Parameter
	Value interface{}
}

// Error formats output.
func (e *ErrParameterType) Error() string {
	return fmt.Sprintf("unexpected value type %T for parameter %s", e.Value, e.Param.String())
}

// ErrParameterRange defines parameter value outside of its limits.
type ErrParameterRange struct {
	Param enums.Parameter
}

// Error formats output.
func (e *ErrParameterRange) Error() string {
	return "value is out of range for parameter " + e.Param.String()
}

// ErrNotOpened defines call to a driver which wasn't opened.
type ErrNotOpened struct {
}

// Error formats output.
func (*ErrNotOpened) Error() string {
	return "device is not opened"
}
