package intcalc

import (
	"math/big"
	"sort"
)

// Env is a variable environment for evaluating expressions. It is not safe
// to use an Env concurrently.
type Env struct {
	names map[string]*big.Int
}

// EnvOption is an option used when creating an environment.
type EnvOption interface {
	envOption()
}

type (
	varopt struct {
		name string
		val  *big.Int
	}
	varsopt map[string]*big.Int
)

func (varopt) envOption()  {}
func (varsopt) envOption() {}

// With sets the value of a variable in the environment.
func With(name string, val *big.Int) EnvOption {
	return varopt{name, val}
}

// WithAll sets the values of any number of variables in the environment.
func WithAll(vars map[string]*big.Int) EnvOption {
	return varsopt(vars)
}

// NewEnv creates a new, empty variable environment.
func NewEnv(opts ...EnvOption) *Env {
	env := Env{names: make(map[string]*big.Int)}
	return env.Clone(opts...)
}

// Assign inserts or overwrites a variable. The value is copied, so later
// changes to val do not show through. Name validity is the caller's
// concern; ProcessAssignment checks it before assigning.
func (env *Env) Assign(name string, val *big.Int) {
	env.names[name] = new(big.Int).Set(val)
}

// Lookup returns a copy of the value of a variable. Names that are not
// legal identifiers yield an IdentifierError; legal names that were never
// assigned yield an UnknownVariableError.
func (env *Env) Lookup(name string) (*big.Int, error) {
	if !IsIdentifier(name) {
		return nil, &IdentifierError{Name: name}
	}
	v := env.names[name]
	if v == nil {
		return nil, &UnknownVariableError{Name: name}
	}
	return new(big.Int).Set(v), nil
}

// Resolve interprets a token as a value: variable names are looked up and
// anything else must parse as an integer literal.
func (env *Env) Resolve(tok string) (*big.Int, error) {
	if IsIdentifier(tok) {
		return env.Lookup(tok)
	}
	v, ok := new(big.Int).SetString(tok, 10)
	if !ok {
		return nil, &SyntaxError{Msg: "not a literal or variable: " + tok}
	}
	return v, nil
}

// Delete removes a variable. Deleting an absent name does nothing.
func (env *Env) Delete(name string) {
	delete(env.names, name)
}

// Clear removes every variable.
func (env *Env) Clear() {
	env.names = make(map[string]*big.Int)
}

// Names returns the defined variable names in sorted order.
func (env *Env) Names() []string {
	names := make([]string, 0, len(env.names))
	for name := range env.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of defined variables.
func (env *Env) Len() int {
	return len(env.names)
}

// Clone creates a copy of an environment and applies options to it. Values
// are copied, so assignments in the clone never show through to the
// original.
func (env *Env) Clone(opts ...EnvOption) *Env {
	n := Env{names: make(map[string]*big.Int, len(env.names))}
	for name, val := range env.names {
		n.names[name] = new(big.Int).Set(val)
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			n.names[opt.name] = new(big.Int).Set(opt.val)
		case varsopt:
			for name, val := range opt {
				n.names[name] = new(big.Int).Set(val)
			}
		default:
			panic("intcalc: unknown option type")
		}
	}
	return &n
}
