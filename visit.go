package calc

import "fmt"

type visitorFunc[F Float] func(n node[F], next func() error) error

// visit the grammar depth first, pre-order. Productions are only visited once.
func visit[F Float](n node[F], visitor visitorFunc[F]) error {
	return _visit(map[node[F]]bool{}, n, visitor)
}

func _visit[F Float](seen map[node[F]]bool, n node[F], visitor visitorFunc[F]) error {
	if seen[n] {
		return nil
	}
	seen[n] = true
	return visitor(n, func() error {
		switch n := n.(type) {
		case *production[F]:
			return _visit(seen, n.expr, visitor)

		case *disjunction[F]:
			for _, c := range n.nodes {
				if err := _visit(seen, c, visitor); err != nil {
					return err
				}
			}

		case *sequence[F]:
			for _, c := range n.nodes {
				if err := _visit(seen, c, visitor); err != nil {
					return err
				}
			}

		case *literal[F], *charRange[F]:

		default:
			panic(fmt.Sprintf("unsupported node type %T", n))
		}
		return nil
	})
}
