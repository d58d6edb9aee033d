package calc

import "io"

type memoKey struct {
	production int
	pos        int
}

type memoEntry[F Float] struct {
	next  int
	value F
	ok    bool
}

// State for a single evaluation.
//
// The input is never modified once the session is created, and match positions are passed by
// value, so the only mutable state is the memo table and the trace depth.
type session[F Float] struct {
	input string
	memo  map[memoKey]memoEntry[F]
	trace io.Writer
	depth int
}

func newSession[F Float](input string, packrat bool, trace io.Writer) *session[F] {
	s := &session[F]{
		input: input,
		trace: trace,
	}
	if packrat {
		s.memo = map[memoKey]memoEntry[F]{}
	}
	return s
}
