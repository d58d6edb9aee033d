package calc

import "fmt"

// A node in the grammar.
type node[F Float] interface {
	// Match the node against the session input starting at pos.
	//
	// On success the index just past the match is returned along with the node's value. On
	// failure ok is false and the caller continues from its own, unchanged, index.
	Match(s *session[F], pos int) (next int, value F, ok bool)
}

// An action computes the value of a sequence from the span it consumed and the values of its
// children, in order.
type action[F Float] func(span string, values []F) F

// Name = <expr> .
type production[F Float] struct {
	id   int
	name string
	expr node[F]
}

func (p *production[F]) Match(s *session[F], pos int) (int, F, bool) {
	if s.memo != nil {
		if r, ok := s.memo[memoKey{p.id, pos}]; ok {
			s.tracef(pos, "%s (memo)", p.name)
			return r.next, r.value, r.ok
		}
	}
	s.tracef(pos, "%s", p.name)
	s.depth++
	next, value, ok := p.expr.Match(s, pos)
	s.depth--
	if !ok {
		next, value = pos, 0
	}
	if s.memo != nil {
		s.memo[memoKey{p.id, pos}] = memoEntry[F]{next, value, ok}
	}
	return next, value, ok
}

// <expr> {"|" <expr>}
//
// Alternatives are tried in order, each from the index the disjunction was entered with. The
// first to match wins.
type disjunction[F Float] struct {
	nodes []node[F]
}

func (d *disjunction[F]) Match(s *session[F], pos int) (int, F, bool) {
	for _, a := range d.nodes {
		if next, value, ok := a.Match(s, pos); ok {
			return next, value, true
		}
	}
	return pos, 0, false
}

// <node> ...
//
// All nodes must match in order. The action, if any, folds the child values into the value of
// the sequence, otherwise the value of the first child is passed through.
type sequence[F Float] struct {
	nodes  []node[F]
	action action[F]
}

func (q *sequence[F]) Match(s *session[F], pos int) (int, F, bool) {
	values := make([]F, 0, len(q.nodes))
	cursor := pos
	for _, n := range q.nodes {
		next, value, ok := n.Match(s, cursor)
		if !ok {
			return pos, 0, false
		}
		values = append(values, value)
		cursor = next
	}
	if q.action == nil {
		if len(values) == 0 {
			return cursor, 0, true
		}
		return cursor, values[0], true
	}
	return cursor, q.action(s.input[pos:cursor], values), true
}

// Match a single character exactly.
type literal[F Float] struct {
	ch byte
}

func (l *literal[F]) Match(s *session[F], pos int) (int, F, bool) {
	if pos < len(s.input) && s.input[pos] == l.ch {
		return pos + 1, 0, true
	}
	return pos, 0, false
}

func (l *literal[F]) String() string { return fmt.Sprintf("%q", string(l.ch)) }

// "a"…"z" matches a single character in the inclusive range.
type charRange[F Float] struct {
	lo, hi byte
}

func (r *charRange[F]) Match(s *session[F], pos int) (int, F, bool) {
	if pos < len(s.input) && s.input[pos] >= r.lo && s.input[pos] <= r.hi {
		return pos + 1, 0, true
	}
	return pos, 0, false
}

func (r *charRange[F]) String() string {
	return fmt.Sprintf("%q…%q", string(r.lo), string(r.hi))
}
