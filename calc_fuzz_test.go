package intcalc_test

import (
	"math/big"
	"testing"

	"github.com/intcalc/intcalc"
)

func FuzzEvaluateLine(f *testing.F) {
	f.Add("1 + 2 * 3")
	f.Add("x")
	f.Add("3 - -5")
	f.Add("(1))(")
	f.Add("/exit")
	f.Fuzz(func(t *testing.T, s string) {
		env := intcalc.NewEnv(intcalc.With("x", big.NewInt(42)))
		r, err := intcalc.EvaluateLine(env, s)
		if err == nil && r == nil {
			t.Errorf("EvaluateLine(%q): nil result without error", s)
		}
		if err != nil && intcalc.Message(err) == "" {
			t.Errorf("EvaluateLine(%q): error %v has no message", s, err)
		}
	})
}

func FuzzProcessAssignment(f *testing.F) {
	f.Add("x = 10")
	f.Add("y = x")
	f.Add("==")
	f.Fuzz(func(t *testing.T, s string) {
		env := intcalc.NewEnv(intcalc.With("x", big.NewInt(42)))
		intcalc.ProcessAssignment(env, s)
	})
}
