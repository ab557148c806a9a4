package rpncalc

import (
	"math"
	"reflect"
	"testing"
)

func TestConstants(t *testing.T) {
	if v, ok := LookupConst("pi"); !ok || v != math.Pi {
		t.Errorf("pi is %v, want %v", v, math.Pi)
	}
	if v, ok := LookupConst("e"); !ok || v != math.E {
		t.Errorf("e is %v, want %v", v, math.E)
	}
	if _, ok := LookupConst("tau"); ok {
		t.Error("tau should not be a constant")
	}
	if got := Constants(); !reflect.DeepEqual(got, []string{"e", "pi"}) {
		t.Errorf("wrong constant names %q", got)
	}
}

func TestFuncNames(t *testing.T) {
	// Every function must be reachable by its canonical name.
	for f := Sqrt; f <= Arctan; f++ {
		tok, ok := LookupFunc(f.String())
		if !ok || tok.Kind != TokenFunc || tok.Func != f {
			t.Errorf("%v: canonical name %q gives %#v", int(f), f.String(), tok)
		}
		if tok.Arity() != 1 {
			t.Errorf("%v has arity %d", f, tok.Arity())
		}
	}
	tok, ok := LookupFunc("log")
	if !ok || tok.Kind != TokenBinary || tok.Binary != Log || tok.Arity() != 2 {
		t.Errorf("log gives %#v", tok)
	}
	if _, ok := LookupFunc("Sin"); ok {
		t.Error("lookup should be case-sensitive")
	}
}

func TestNamesDisjoint(t *testing.T) {
	for _, name := range Functions() {
		if _, ok := constants[name]; ok {
			t.Errorf("%q is both a function and a constant", name)
		}
	}
	names := Functions()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("function names not sorted at %q, %q", names[i-1], names[i])
		}
	}
}

func TestTrig(t *testing.T) {
	cases := []struct {
		f    Func
		in   float64
		want float64
	}{
		{Sin, 30, 0.5},
		{Cos, 180, -1},
		{Tan, 45, 1},
		{Cot, 45, 1},
		// Inverse functions take ratios and are never converted.
		{Arcsin, 0.5, math.Asin(0.5)},
		{Arccos, 0.5, math.Acos(0.5)},
		{Arctan, 1, math.Pi / 4},
		{Sinh, 1, math.Sinh(1)},
	}
	for _, c := range cases {
		if got := c.f.call(c.in, false); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("%v(%v) in degrees: want %v, got %v", c.f, c.in, c.want, got)
		}
	}
}
