package calc

// Grammar productions in the order they are declared in the package documentation.
type grammar[F Float] struct {
	root        *production[F]
	productions []*production[F]
}

func seq[F Float](act action[F], nodes ...node[F]) node[F] {
	return &sequence[F]{nodes: nodes, action: act}
}

func choice[F Float](nodes ...node[F]) node[F] {
	return &disjunction[F]{nodes: nodes}
}

func char[F Float](ch byte) node[F] {
	return &literal[F]{ch: ch}
}

// Builds the expression grammar.
//
// Productions refer to each other directly, so they are all allocated before any expression is
// attached.
func buildGrammar[F Float]() *grammar[F] {
	var (
		expression = &production[F]{name: "Expression"}
		subExpr    = &production[F]{name: "SubExpr"}
		negSub     = &production[F]{name: "NegSub"}
		term       = &production[F]{name: "Term"}
		divTerm    = &production[F]{name: "DivTerm"}
		factor     = &production[F]{name: "Factor"}
		number     = &production[F]{name: "Number"}
		intPart    = &production[F]{name: "IntPart"}
		digit      = &production[F]{name: "Digit"}
	)

	// Values of literals are placeholders in the action arguments, eg. for `Term "+" SubExpr`
	// v[1] belongs to "+".
	expression.expr = choice[F](negSub, subExpr)

	subExpr.expr = choice[F](
		seq[F](func(_ string, v []F) F { return v[0] + v[2] }, term, char[F]('+'), subExpr),
		seq[F](func(_ string, v []F) F { return v[0] + v[1] }, term, negSub),
		seq[F](nil, term),
	)

	negSub.expr = choice[F](
		seq[F](func(_ string, v []F) F { return -v[1] + v[3] }, char[F]('-'), term, char[F]('+'), subExpr),
		seq[F](func(_ string, v []F) F { return -v[1] + v[2] }, char[F]('-'), term, negSub),
		seq[F](func(_ string, v []F) F { return -v[1] }, char[F]('-'), term),
	)

	term.expr = choice[F](
		seq[F](func(_ string, v []F) F { return v[0] * v[2] }, factor, char[F]('*'), term),
		seq[F](func(_ string, v []F) F { return v[0] * v[1] }, factor, divTerm),
		seq[F](nil, factor),
	)

	divTerm.expr = choice[F](
		seq[F](func(_ string, v []F) F { return v[3] / v[1] }, char[F]('/'), factor, char[F]('*'), term),
		seq[F](func(_ string, v []F) F { return v[2] / v[1] }, char[F]('/'), factor, divTerm),
		seq[F](func(_ string, v []F) F { return 1 / v[1] }, char[F]('/'), factor),
	)

	factor.expr = choice[F](
		seq[F](nil, number),
		seq[F](func(_ string, v []F) F { return v[1] }, char[F]('('), expression, char[F](')')),
	)

	number.expr = choice[F](
		seq[F](func(span string, _ []F) F { return evaluateNumber[F](span) }, intPart, char[F]('.'), intPart),
		seq[F](func(span string, _ []F) F { return evaluateNumber[F](span) }, intPart),
	)

	intPart.expr = choice[F](
		seq[F](func(span string, _ []F) F { return evaluateInt[F](span) }, digit, intPart),
		seq[F](func(span string, _ []F) F { return evaluateInt[F](span) }, digit),
	)

	digit.expr = &charRange[F]{lo: '0', hi: '9'}

	g := &grammar[F]{root: expression}
	_ = visit[F](expression, func(n node[F], next func() error) error {
		if p, ok := n.(*production[F]); ok {
			p.id = len(g.productions)
			g.productions = append(g.productions, p)
		}
		return next()
	})
	return g
}
