package calc

import (
	"math"
	"strings"
)

// evaluateInt reduces a run of decimal digits to its value, weighting each digit by its
// position.
//
// The span is assumed to have already matched the IntPart production.
func evaluateInt[F Float](digits string) F {
	return F(weigh(digits))
}

// evaluateNumber reduces a span matching the Number production, with or without a
// decimal point.
//
// Weighting is done in float64 and converted once, so a float32 result never sees an
// intermediate power of ten beyond its range.
func evaluateNumber[F Float](span string) F {
	radix := strings.IndexByte(span, '.')
	if radix < 0 {
		return evaluateInt[F](span)
	}
	fraction := span[radix+1:]
	return F(weigh(span[:radix]) + weigh(fraction)/math.Pow(10, float64(len(fraction))))
}

func weigh(digits string) float64 {
	var sum float64
	n := len(digits)
	for i := 0; i < n; i++ {
		sum += math.Pow(10, float64(n-i-1)) * float64(digits[i]-'0')
	}
	return sum
}
