// Package calc evaluates arithmetic expressions over real numbers with a backtracking
// recursive-descent parser.
//
// Whitespace is removed from a line before it is matched, character by character, against the
// following grammar. Alternatives are tried in order and the first to match wins. Every
// production computes its value as soon as it matches.
//
//     Expression = NegSub | SubExpr .
//     SubExpr    = Term "+" SubExpr | Term NegSub | Term .
//     NegSub     = "-" Term "+" SubExpr | "-" Term NegSub | "-" Term .
//     Term       = Factor "*" Term | Factor DivTerm | Factor .
//     DivTerm    = "/" Factor "*" Term | "/" Factor DivTerm | "/" Factor .
//     Factor     = Number | "(" Expression ")" .
//     Number     = IntPart "." IntPart | IntPart .
//     IntPart    = Digit IntPart | Digit .
//     Digit      = "0" … "9" .
//
// Subtraction is folded into addition of negated terms, and division into multiplication by a
// reciprocal, so "5-3-2" is 5 + (-3 + -2) and "8/2/2" is 8 * ((1/2) / 2).
//
// A line evaluates successfully only if the whole of it is consumed:
//
//     value, ok := calc.TryEvaluate("(3 + 4) * 2")
package calc
