package intcalc_test

import (
	"errors"
	"math/big"
	"reflect"
	"testing"

	"github.com/intcalc/intcalc"
)

func TestEnvAssignLookup(t *testing.T) {
	env := intcalc.NewEnv()
	env.Assign("x", big.NewInt(10))
	v, err := env.Lookup("x")
	if err != nil {
		t.Fatalf("Lookup(x): %v", err)
	}
	if v.Cmp(big.NewInt(10)) != 0 {
		t.Errorf("Lookup(x) = %v, want 10", v)
	}
	// The environment stores and returns copies.
	v.SetInt64(99)
	v2, err := env.Lookup("x")
	if err != nil {
		t.Fatalf("Lookup(x): %v", err)
	}
	if v2.Cmp(big.NewInt(10)) != 0 {
		t.Errorf("Lookup(x) after mutating an earlier result = %v, want 10", v2)
	}
	in := big.NewInt(7)
	env.Assign("y", in)
	in.SetInt64(3)
	vy, err := env.Lookup("y")
	if err != nil {
		t.Fatalf("Lookup(y): %v", err)
	}
	if vy.Cmp(big.NewInt(7)) != 0 {
		t.Errorf("Lookup(y) after mutating the assigned value = %v, want 7", vy)
	}
	// Reassignment overwrites.
	env.Assign("x", big.NewInt(-4))
	vx, _ := env.Lookup("x")
	if vx.Cmp(big.NewInt(-4)) != 0 {
		t.Errorf("Lookup(x) after reassignment = %v, want -4", vx)
	}
}

func TestEnvLookupErrors(t *testing.T) {
	env := intcalc.NewEnv(intcalc.With("x", big.NewInt(1)))
	var uvar *intcalc.UnknownVariableError
	if _, err := env.Lookup("z"); !errors.As(err, &uvar) {
		t.Errorf("Lookup(z): want UnknownVariableError, got %v", err)
	}
	var ident *intcalc.IdentifierError
	if _, err := env.Lookup("1x"); !errors.As(err, &ident) {
		t.Errorf("Lookup(1x): want IdentifierError, got %v", err)
	}
}

func TestEnvResolve(t *testing.T) {
	env := intcalc.NewEnv(intcalc.With("x", big.NewInt(5)))
	v, err := env.Resolve("x")
	if err != nil || v.Cmp(big.NewInt(5)) != 0 {
		t.Errorf("Resolve(x) = %v, %v, want 5", v, err)
	}
	v, err = env.Resolve("-12")
	if err != nil || v.Cmp(big.NewInt(-12)) != 0 {
		t.Errorf("Resolve(-12) = %v, %v, want -12", v, err)
	}
	if _, err := env.Resolve("1x"); err == nil {
		t.Error("Resolve(1x): want error, got none")
	}
	var uvar *intcalc.UnknownVariableError
	if _, err := env.Resolve("z"); !errors.As(err, &uvar) {
		t.Errorf("Resolve(z): want UnknownVariableError, got %v", err)
	}
}

func TestEnvOptions(t *testing.T) {
	env := intcalc.NewEnv(
		intcalc.With("a", big.NewInt(1)),
		intcalc.WithAll(map[string]*big.Int{
			"b": big.NewInt(2),
			"c": big.NewInt(3),
		}),
	)
	if got, want := env.Names(), []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	for name, want := range map[string]int64{"a": 1, "b": 2, "c": 3} {
		v, err := env.Lookup(name)
		if err != nil {
			t.Errorf("Lookup(%s): %v", name, err)
			continue
		}
		if v.Cmp(big.NewInt(want)) != 0 {
			t.Errorf("Lookup(%s) = %v, want %d", name, v, want)
		}
	}
}

func TestEnvDeleteClear(t *testing.T) {
	env := intcalc.NewEnv(intcalc.WithAll(map[string]*big.Int{
		"a": big.NewInt(1),
		"b": big.NewInt(2),
	}))
	env.Delete("a")
	env.Delete("missing")
	if _, err := env.Lookup("a"); err == nil {
		t.Error("Lookup(a) after Delete: want error, got none")
	}
	if env.Len() != 1 {
		t.Errorf("Len() after Delete = %d, want 1", env.Len())
	}
	env.Clear()
	if env.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", env.Len())
	}
	if got := env.Names(); len(got) != 0 {
		t.Errorf("Names() after Clear = %v, want none", got)
	}
}

func TestEnvClone(t *testing.T) {
	env := intcalc.NewEnv(intcalc.With("x", big.NewInt(5)))
	clone := env.Clone(intcalc.With("y", big.NewInt(6)))
	clone.Assign("x", big.NewInt(9))
	v, err := env.Lookup("x")
	if err != nil || v.Cmp(big.NewInt(5)) != 0 {
		t.Errorf("original x after clone assignment = %v, %v, want 5", v, err)
	}
	if _, err := env.Lookup("y"); err == nil {
		t.Error("original should not see the clone's y")
	}
	vy, err := clone.Lookup("y")
	if err != nil || vy.Cmp(big.NewInt(6)) != 0 {
		t.Errorf("clone y = %v, %v, want 6", vy, err)
	}
}
