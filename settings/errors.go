package settings

// ErrInvalidRecord defines config record which failed to parse or validate.
type ErrInvalidRecord struct {
	System   string
	Provider string
}

// Error formats output.
func (e *ErrInvalidRecord) Error() string {
	return "invalid config record " + e.System + "/" + e.Provider
}
