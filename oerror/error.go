package oerror

import "fmt"

// Error is an error raised by the simulation core for conditions that indicate
// programmer error rather than a recoverable runtime state.
type Error struct {
	Err string
}

// New creates an Error from a format string and arguments.
func New(format string, args ...interface{}) *Error {
	return &Error{Err: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Err
}
