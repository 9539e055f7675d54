package hclloader

import (
	"fmt"
	"math"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// unaryMathFunc lifts a float64 function from the math package into a cty
// function over a single number argument.
func unaryMathFunc(name string, impl func(float64) float64) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "x", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.Number),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			x, _ := args[0].AsBigFloat().Float64()
			result := impl(x)
			if math.IsNaN(result) {
				return cty.NilVal, fmt.Errorf("%s(%g) is undefined", name, x)
			}
			return cty.NumberFloatVal(result), nil
		},
	})
}

// roundFunc rounds to the nearest integer, halves away from zero.
var roundFunc = unaryMathFunc("round", math.Round)

// Functions returns the function table available inside node expressions.
// Where cty's stdlib already provides a numeric function it is used
// directly; the trigonometric and exponential ones are lifted from the math
// package.
func Functions() map[string]function.Function {
	return map[string]function.Function{
		"abs":   stdlib.AbsoluteFunc,
		"ceil":  stdlib.CeilFunc,
		"floor": stdlib.FloorFunc,
		"log":   stdlib.LogFunc,
		"max":   stdlib.MaxFunc,
		"min":   stdlib.MinFunc,
		"pow":   stdlib.PowFunc,

		// stdlib's signum only accepts whole numbers, so lift it from a
		// float comparison like the other real-valued functions.
		"signum": unaryMathFunc("signum", func(x float64) float64 {
			switch {
			case x > 0:
				return 1
			case x < 0:
				return -1
			default:
				return 0
			}
		}),

		"sin":  unaryMathFunc("sin", math.Sin),
		"cos":  unaryMathFunc("cos", math.Cos),
		"tan":  unaryMathFunc("tan", math.Tan),
		"asin": unaryMathFunc("asin", math.Asin),
		"acos": unaryMathFunc("acos", math.Acos),
		"atan": unaryMathFunc("atan", math.Atan),
		"exp":  unaryMathFunc("exp", math.Exp),
		"ln":   unaryMathFunc("ln", math.Log),
		"sqrt": unaryMathFunc("sqrt", math.Sqrt),

		"round": roundFunc,
	}
}
