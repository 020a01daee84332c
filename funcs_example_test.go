package arith_test

import (
	"fmt"

	"github.com/arithlang/arith"
)

// mean accepts any positive number of arguments and averages them.
type mean struct{}

func (mean) CanCall(n int) bool {
	return n > 0
}

func (mean) Call(args []float64) float64 {
	var sum float64
	for _, a := range args {
		sum += a
	}
	return sum / float64(len(args))
}

func ExampleFunc() {
	r, _ := arith.EvalString("max(1, 2, 3, 6)", arith.SetFunc("max", mean{}))
	fmt.Println(r)
	// Output: 3
}
