package calc

import (
	"errors"
	"io"
)

type options struct {
	trace     io.Writer
	packrat   bool
	normalize func(string) string
}

// An Option to modify the behaviour of the Parser.
type Option func(o *options) error

// NoPackrat disables memoisation of production results.
//
// Results are identical either way, but without memoisation each level of parentheses
// multiplies the work by about nine: six levels, eg. "((((((1))))))", take on the order of ten
// seconds. It is meant for debugging and for comparing against the memoised matcher only.
func NoPackrat() Option {
	return func(o *options) error {
		o.packrat = false
		return nil
	}
}

// Normalizer replaces the function applied to each line before it is matched. The default is
// Normalize, which strips all whitespace.
func Normalizer(normalize func(string) string) Option {
	return func(o *options) error {
		if normalize == nil {
			return errors.New("normalizer must not be nil")
		}
		o.normalize = normalize
		return nil
	}
}
