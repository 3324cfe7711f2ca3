package registry

import "fmt"

// ErrExtensionNotFound defines an unknown extension family.
type ErrExtensionNotFound struct {
	Family uint32
}

// Error formats output.
func (e *ErrExtensionNotFound) Error() string {
	return fmt.Sprintf("extension family 0x%x is not registered", e.Family)
}

// ErrDriverLoad defines driver plugin which failed to load.
type ErrDriverLoad struct {
	Plugin string
	Err    error
}

// Error formats output.
func (e *ErrDriverLoad) Error() string {
	return fmt.Sprintf("failed to load driver %s: %s", e.Plugin, e.Err.Error())
}

// ErrWrongFactory defines plugin returning unexpected factory type.
type ErrWrongFactory struct {
}

// Error formats output.
func (*ErrWrongFactory) Error() string {
	return "plugin returned unexpected factory type"
}
