package rpncalc_test

import (
	"math"
	"testing"

	"github.com/zephyrtronium/rpncalc"
)

func FuzzEval(f *testing.F) {
	f.Add("2log(8)", false)
	f.Add("-2^-2", true)
	f.Add("cot(0)", true)
	f.Add("3,5", false)
	f.Fuzz(func(t *testing.T, s string, radians bool) {
		a, err := rpncalc.EvaluateExpression(s, radians, ',')
		if err != nil {
			return
		}
		// No hidden state: evaluating again gives the same result.
		b, err := rpncalc.EvaluateExpression(s, radians, ',')
		if err != nil {
			t.Fatalf("%q failed the second time: %v", s, err)
		}
		if a != b && !(math.IsNaN(a) && math.IsNaN(b)) {
			t.Fatalf("%q gave %v then %v", s, a, b)
		}
	})
}
