package expr

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Var is a symbolic placeholder owned by the caller-side system. Identity
// is the pointer; the name is diagnostic only.
type Var struct {
	name string
}

// NewVar creates a symbolic placeholder with a diagnostic name.
func NewVar(name string) *Var { return &Var{name: name} }

// Name returns the diagnostic name of the placeholder.
func (v *Var) Name() string { return v.name }

func (v *Var) String() string { return v.name }

// Value is one call argument: either a concrete number or a symbolic
// placeholder. The zero Value is the concrete number 0.
type Value struct {
	num float64
	sym *Var
}

// Number wraps a concrete float64 argument.
func Number(v float64) Value { return Value{num: v} }

// Symbol wraps a symbolic placeholder argument.
func Symbol(v *Var) Value { return Value{sym: v} }

// Concrete returns the numeric value and true when the argument is a
// concrete number.
func (v Value) Concrete() (float64, bool) {
	if v.sym != nil {
		return 0, false
	}
	return v.num, true
}

// Symbolic returns the placeholder and true when the argument is symbolic.
func (v Value) Symbolic() (*Var, bool) {
	return v.sym, v.sym != nil
}

func (v Value) String() string {
	if v.sym != nil {
		return v.sym.Name()
	}
	return strconv.FormatFloat(v.num, 'g', -1, 64)
}

// ArgTuple is the argument list of one syntactic call. Build it once per
// call site: its pointer identity is what downstream memoization keys on.
type ArgTuple struct {
	vals []Value
}

// Args builds an argument tuple. The values are copied.
func Args(vals ...Value) *ArgTuple {
	t := &ArgTuple{vals: make([]Value, len(vals))}
	copy(t.vals, vals)
	return t
}

// Len reports the number of arguments.
func (t *ArgTuple) Len() int { return len(t.vals) }

// Values returns a copy of the argument list.
func (t *ArgTuple) Values() []Value {
	out := make([]Value, len(t.vals))
	copy(out, t.vals)
	return out
}

// AllConcrete returns the numeric argument vector and true when every
// argument is a concrete number.
func (t *ArgTuple) AllConcrete() ([]float64, bool) {
	out := make([]float64, len(t.vals))
	for i, v := range t.vals {
		x, ok := v.Concrete()
		if !ok {
			return nil, false
		}
		out[i] = x
	}
	return out, true
}

func (t *ArgTuple) String() string {
	parts := make([]string, len(t.vals))
	for i, v := range t.vals {
		parts[i] = v.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// callIDs hands out process-unique node IDs in mint order.
var callIDs atomic.Uint64

// Call is the opaque node standing in for a deferred symbolic invocation
// of a piecewise-linear function. Two Calls are the same node only if
// they are the same pointer; structural equality of their tuples is
// irrelevant.
type Call struct {
	id   uint64
	args *ArgTuple
}

// NewCall mints a fresh node for the given argument tuple.
func NewCall(args *ArgTuple) *Call {
	return &Call{id: callIDs.Add(1), args: args}
}

// ID returns the process-unique mint-order identifier of the node.
func (c *Call) ID() uint64 { return c.id }

// Args returns the argument tuple the node was minted for.
func (c *Call) Args() *ArgTuple { return c.args }

func (c *Call) String() string {
	return fmt.Sprintf("pwl#%d%s", c.id, c.args)
}
