package calc

import (
	"fmt"
	"io"
	"strings"
)

// Trace the evaluation to "w".
//
// Each production attempt is written as the remaining input followed by the production name,
// indented by depth.
func Trace(w io.Writer) Option {
	return func(o *options) error {
		o.trace = w
		return nil
	}
}

func (s *session[F]) tracef(pos int, format string, args ...interface{}) {
	if s.trace == nil {
		return
	}
	fmt.Fprintf(s.trace, "%s%q %s\n", strings.Repeat(" ", s.depth*2), s.input[pos:], fmt.Sprintf(format, args...))
}
