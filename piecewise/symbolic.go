package piecewise

import (
	"fmt"

	"github.com/pkallberg/pwlin/expr"
)

// Call is the single query entry point for mixed concrete/symbolic
// arguments. An all-concrete tuple is evaluated immediately and returns
// (value, nil, nil). Otherwise evaluation is deferred: one opaque node is
// minted per argument-tuple identity and returned as (0, node, nil);
// calling again with the same tuple returns the same node, while a
// structurally equal but separately built tuple gets its own node.
func (f *Func) Call(args *expr.ArgTuple) (float64, *expr.Call, error) {
	if !f.built {
		return 0, nil, fmt.Errorf("Call: function not built: %w", ErrConfiguration)
	}
	if args == nil {
		return 0, nil, fmt.Errorf("Call: nil argument tuple: %w", ErrConfiguration)
	}
	if args.Len() != f.dim {
		return 0, nil, fmt.Errorf("Call: got %d arguments, want %d: %w",
			args.Len(), f.dim, ErrDimensionMismatch)
	}

	if xs, ok := args.AllConcrete(); ok {
		y, err := f.Evaluate(xs...)
		return y, nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if node, ok := f.registered[args]; ok {
		return 0, node, nil
	}
	node := expr.NewCall(args)
	f.registered[args] = node
	f.nodes = append(f.nodes, node)
	return 0, node, nil
}

// Nodes returns every symbolic node produced so far, in mint order.
func (f *Func) Nodes() []*expr.Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*expr.Call(nil), f.nodes...)
}

// BindSurrogate records the surrogate variable an external linearization
// step substituted for the given node. The engine never reads the
// variable itself; bindings are append-only for the instance's lifetime.
func (f *Func) BindSurrogate(node *expr.Call, v *expr.Var) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.owns(node) {
		return fmt.Errorf("BindSurrogate(%v): %w", node, ErrUnknownNode)
	}
	f.surrogates[node] = v
	return nil
}

// Surrogate returns the variable bound to the node, if any.
func (f *Func) Surrogate(node *expr.Call) (*expr.Var, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.surrogates[node]
	return v, ok
}

// owns reports whether this instance minted the node. Callers hold f.mu.
func (f *Func) owns(node *expr.Call) bool {
	if node == nil {
		return false
	}
	n, ok := f.registered[node.Args()]
	return ok && n == node
}
