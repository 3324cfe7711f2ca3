package topology

import "fmt"

// ErrLayoutFile defines unreadable board layout file.
type ErrLayoutFile struct {
	File string
	Err  error
}

// Error formats output.
func (e *ErrLayoutFile) Error() string {
	return fmt.Sprintf("failed to read board layout %s: %s", e.File, e.Err.Error())
}

// Cause returns underlying error.
func (e *ErrLayoutFile) Cause() error {
	return e.Err
}

// ErrInvalidMax defines non-positive enumeration limit.
type ErrInvalidMax struct {
	Max int
}

// Error formats output.
func (e *ErrInvalidMax) Error() string {
	return fmt.Sprintf("enumeration limit must be positive, got %d", e.Max)
}

// ErrDatabaseClosed defines query to a closed peripheral database.
type ErrDatabaseClosed struct {
}

// Error formats output.
func (*ErrDatabaseClosed) Error() string {
	return "peripheral database is closed"
}
