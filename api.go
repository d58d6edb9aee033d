package calc

var defaultParser = MustNew[float64]()

// TryEvaluate evaluates line in float64.
//
// ok is false if line is not a complete expression.
func TryEvaluate(line string) (value float64, ok bool) {
	return defaultParser.TryEvaluate(line)
}

// Evaluate evaluates line in float64, returning a *Failure if line is not a complete
// expression.
func Evaluate(line string) (float64, error) {
	return defaultParser.Evaluate(line)
}
