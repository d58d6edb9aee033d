package calc

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Float is the set of numeric types an expression can be evaluated in.
type Float interface {
	constraints.Float
}

// A Parser for arithmetic expressions, evaluating to F.
//
// A Parser holds no per-evaluation state and is safe for concurrent use.
type Parser[F Float] struct {
	grammar *grammar[F]
	options
}

// New constructs a Parser evaluating in F.
func New[F Float](opts ...Option) (*Parser[F], error) {
	p := &Parser[F]{
		grammar: buildGrammar[F](),
		options: options{
			packrat:   true,
			normalize: Normalize,
		},
	}
	for _, option := range opts {
		if err := option(&p.options); err != nil {
			return nil, err
		}
	}
	if err := p.grammar.verify(); err != nil {
		return nil, fmt.Errorf("invalid grammar: %w", err)
	}
	return p, nil
}

// MustNew calls New and panics if it returns an error.
func MustNew[F Float](opts ...Option) *Parser[F] {
	p, err := New[F](opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// TryEvaluate normalises line and evaluates it.
//
// ok is false if the line does not match the grammar in its entirety, in which case value is
// meaningless.
func (p *Parser[F]) TryEvaluate(line string) (value F, ok bool) {
	value, err := p.Evaluate(line)
	return value, err == nil
}

// Evaluate normalises line and evaluates it, returning a *Failure if it does not match the
// grammar in its entirety.
func (p *Parser[F]) Evaluate(line string) (F, error) {
	input := p.normalize(line)
	s := newSession[F](input, p.packrat, p.trace)
	next, value, ok := p.grammar.root.Match(s, 0)
	if !ok || next != len(input) {
		return 0, &Failure{Input: input}
	}
	return value, nil
}
