//go:build go1.18
// +build go1.18

package arith_test

import (
	"strings"
	"testing"

	"github.com/arithlang/arith"
)

func FuzzParse(f *testing.F) {
	f.Add("x")
	f.Add("2 + 3 * 4")
	f.Add("pow(2, 10)")
	f.Add("max(min(3 * 2, 2), 2)")
	f.Fuzz(func(t *testing.T, s string) {
		arith.Parse(strings.NewReader(s))
	})
}
