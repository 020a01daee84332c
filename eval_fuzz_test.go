//go:build go1.18
// +build go1.18

package arith_test

import (
	"testing"

	"github.com/arithlang/arith"
)

func FuzzEval(f *testing.F) {
	f.Add("x")
	f.Add("1 / 0")
	f.Add("pow(2, 10)")
	f.Add("abs(5, 2)")
	f.Fuzz(func(t *testing.T, s string) {
		arith.EvalString(s, arith.SetVar("x", 1))
	})
}
