package main

import (
	"fmt"
	"strconv"

	"github.com/parsy/calc"
)

// An engine evaluates lines and formats the result.
type engine interface {
	Evaluate(line string) (string, bool)
	// Grammar returns the EBNF of the grammar.
	Grammar() string
}

type floatEngine[F calc.Float] struct {
	parser *calc.Parser[F]
	bits   int
	// Significant digits to print, -1 for the shortest exact representation.
	digits int
}

func (e *floatEngine[F]) Evaluate(line string) (string, bool) {
	value, ok := e.parser.TryEvaluate(line)
	if !ok {
		return "", false
	}
	return strconv.FormatFloat(float64(value), 'g', e.digits, e.bits), true
}

func (e *floatEngine[F]) Grammar() string { return e.parser.String() }

// newEngine for the given precision in bits. A digits value of zero prints the shortest
// representation that round-trips.
func newEngine(precision, digits int, options ...calc.Option) (engine, error) {
	if digits < 0 {
		return nil, fmt.Errorf("digits must not be negative but got %d", digits)
	}
	if digits == 0 {
		digits = -1
	}
	switch precision {
	case 32:
		parser, err := calc.New[float32](options...)
		if err != nil {
			return nil, err
		}
		return &floatEngine[float32]{parser, 32, digits}, nil
	case 64:
		parser, err := calc.New[float64](options...)
		if err != nil {
			return nil, err
		}
		return &floatEngine[float64]{parser, 64, digits}, nil
	}
	return nil, fmt.Errorf("unsupported precision %d", precision)
}
