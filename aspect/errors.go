// Public domain.

package aspect

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is wrapped by every *InputError.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnknownPoint is wrapped by every *LookupError.
	ErrUnknownPoint = errors.New("unknown point")
)

// InputError reports an argument outside the engine's domain.
type InputError struct {
	Op  string // function detecting the error
	Msg string
}

func (e *InputError) Error() string {
	return "aspect: " + e.Op + ": " + e.Msg
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }

func inputErr(op, format string, a ...interface{}) error {
	return &InputError{Op: op, Msg: fmt.Sprintf(format, a...)}
}

// LookupError reports a point name that could not be resolved, either to
// a reference ID, or to point data of a subject.
type LookupError struct {
	Name    string
	Subject string // empty for reference ID lookups
}

func (e *LookupError) Error() string {
	if e.Subject == "" {
		return fmt.Sprintf("aspect: point %q not in reference catalog", e.Name)
	}
	return fmt.Sprintf("aspect: subject %q has no point %q", e.Subject, e.Name)
}

func (e *LookupError) Unwrap() error { return ErrUnknownPoint }
