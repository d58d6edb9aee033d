package calc_test

import (
	"math"
	"testing"

	"github.com/parsy/calc"
)

func FuzzWhitespaceIdempotence(f *testing.F) {
	for _, seed := range []string{"3+4*2", " ( 3 + 4 ) * 2", "-5 +2", "10/2/5", "1.5 + 2.25", "1+", "  ", ""} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, line string) {
		value, ok := calc.TryEvaluate(line)
		normalValue, normalOK := calc.TryEvaluate(calc.Normalize(line))
		if ok != normalOK {
			t.Fatalf("%q: ok=%v but normalised ok=%v", line, ok, normalOK)
		}
		if ok && value != normalValue && !(math.IsNaN(value) && math.IsNaN(normalValue)) {
			t.Fatalf("%q: %v != %v", line, value, normalValue)
		}
	})
}

func FuzzPackratEquivalence(f *testing.F) {
	plain := calc.MustNew[float64](calc.NoPackrat())
	for _, seed := range []string{"3+4*2", "(3+4)*2", "-5+2", "8/2*3", "1-(-2)", "(1"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, line string) {
		if len(line) > 12 {
			t.Skip()
		}
		value, ok := calc.TryEvaluate(line)
		plainValue, plainOK := plain.TryEvaluate(line)
		if ok != plainOK {
			t.Fatalf("%q: packrat ok=%v but plain ok=%v", line, ok, plainOK)
		}
		if ok && value != plainValue && !(math.IsNaN(value) && math.IsNaN(plainValue)) {
			t.Fatalf("%q: %v != %v", line, value, plainValue)
		}
	})
}
