package calc

import "errors"

// ErrFailure matches any *Failure with errors.Is.
var ErrFailure = errors.New("failure")

// Failure is returned by Evaluate when no match of the grammar consumes the whole line.
// It carries no position.
type Failure struct {
	// Input is the normalised line.
	Input string
}

func (f *Failure) Error() string { return "failure: " + f.Input }

// Is reports whether target is ErrFailure.
func (f *Failure) Is(target error) bool { return target == ErrFailure }
