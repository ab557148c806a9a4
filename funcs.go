package rpncalc

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// words maps every function name, including aliases, to the token it
// produces. log is a binary operator that is written like a function. The
// map is never modified after initialization.
var words = map[string]Token{
	"sqrt":   {Kind: TokenFunc, Func: Sqrt},
	"√":      {Kind: TokenFunc, Func: Sqrt},
	"sin":    {Kind: TokenFunc, Func: Sin},
	"cos":    {Kind: TokenFunc, Func: Cos},
	"tan":    {Kind: TokenFunc, Func: Tan},
	"tg":     {Kind: TokenFunc, Func: Tan},
	"cot":    {Kind: TokenFunc, Func: Cot},
	"ctg":    {Kind: TokenFunc, Func: Cot},
	"sinh":   {Kind: TokenFunc, Func: Sinh},
	"sh":     {Kind: TokenFunc, Func: Sinh},
	"cosh":   {Kind: TokenFunc, Func: Cosh},
	"ch":     {Kind: TokenFunc, Func: Cosh},
	"tanh":   {Kind: TokenFunc, Func: Tanh},
	"th":     {Kind: TokenFunc, Func: Tanh},
	"ln":     {Kind: TokenFunc, Func: Ln},
	"exp":    {Kind: TokenFunc, Func: Exp},
	"abs":    {Kind: TokenFunc, Func: Abs},
	"arcsin": {Kind: TokenFunc, Func: Arcsin},
	"asin":   {Kind: TokenFunc, Func: Arcsin},
	"arccos": {Kind: TokenFunc, Func: Arccos},
	"acos":   {Kind: TokenFunc, Func: Arccos},
	"arctan": {Kind: TokenFunc, Func: Arctan},
	"arctg":  {Kind: TokenFunc, Func: Arctan},
	"atan":   {Kind: TokenFunc, Func: Arctan},
	"log":    {Kind: TokenBinary, Binary: Log},
}

// constprec is the precision in bits used to compute constants before they
// are rounded to float64.
const constprec = 128

// constants maps constant names to their values. The map is never modified
// after initialization.
var constants = map[string]float64{
	"pi": bigconst(bigfloat.Pi),
	"e": bigconst(func(out *big.Float) *big.Float {
		one := new(big.Float).SetPrec(constprec).SetInt64(1)
		return bigfloat.Exp(out, one)
	}),
}

// bigconst computes a constant at constprec bits and rounds it to the
// nearest float64.
func bigconst(f func(out *big.Float) *big.Float) float64 {
	r := new(big.Float).SetPrec(constprec)
	f(r)
	v, _ := r.Float64()
	return v
}

// LookupFunc returns the token a function name produces. The name must be
// lowercase. The result is a TokenFunc, or a TokenBinary for log.
func LookupFunc(name string) (Token, bool) {
	t, ok := words[name]
	return t, ok
}

// LookupConst returns the value of a named constant. The name must be
// lowercase.
func LookupConst(name string) (float64, bool) {
	v, ok := constants[name]
	return v, ok
}

// Functions returns the sorted list of recognized function names, including
// aliases.
func Functions() []string {
	r := make([]string, 0, len(words))
	for k := range words {
		r = append(r, k)
	}
	sortstrs(r)
	return r
}

// Constants returns the sorted list of recognized constant names.
func Constants() []string {
	r := make([]string, 0, len(constants))
	for k := range constants {
		r = append(r, k)
	}
	sortstrs(r)
	return r
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}
