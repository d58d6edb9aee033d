package calc

import (
	"fmt"
	"strings"

	"golang.org/x/exp/ebnf"
)

// String returns the EBNF for the grammar.
//
// The output is accepted by "golang.org/x/exp/ebnf".
func (p *Parser[F]) String() string {
	return p.grammar.String()
}

func (g *grammar[F]) String() string {
	out := []string{}
	for _, p := range g.productions {
		out = append(out, fmt.Sprintf("%s = %s .", p.name, ebnfExpr[F](true, p.expr)))
	}
	return strings.Join(out, "\n")
}

func ebnfExpr[F Float](root bool, n node[F]) string {
	switch n := n.(type) {
	case *production[F]:
		return n.name

	case *disjunction[F]:
		out := []string{}
		for _, c := range n.nodes {
			out = append(out, ebnfExpr(false, c))
		}
		if root {
			return strings.Join(out, " | ")
		}
		return "(" + strings.Join(out, " | ") + ")"

	case *sequence[F]:
		out := []string{}
		for _, c := range n.nodes {
			out = append(out, ebnfExpr(false, c))
		}
		if len(out) > 1 && !root {
			return "(" + strings.Join(out, " ") + ")"
		}
		return strings.Join(out, " ")

	case *literal[F]:
		return n.String()

	case *charRange[F]:
		return n.String()

	default:
		panic(fmt.Sprintf("unsupported node type %T", n))
	}
}

// verify checks that the grammar is well formed EBNF, that every production is defined and that
// all of them are reachable from the root.
func (g *grammar[F]) verify() error {
	productions, err := ebnf.Parse("<grammar>", strings.NewReader(g.String()))
	if err != nil {
		return err
	}
	return ebnf.Verify(productions, g.root.name)
}
