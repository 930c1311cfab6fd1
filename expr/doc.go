// Package expr models the arguments and opaque nodes a piecewise-linear
// function exchanges with a surrounding symbolic system.
//
// What:
//
//   - Value is an explicit sum type over the two argument kinds: a
//     concrete number or a symbolic placeholder (Var). No runtime type
//     sniffing; callers probe with Concrete.
//   - ArgTuple is one syntactic call's argument list. Its pointer
//     identity, not its contents, keys downstream memoization: two
//     structurally equal tuples built separately are distinct calls.
//   - Call is the opaque node minted for a deferred symbolic invocation.
//     Nodes carry a process-unique ID usable as a stable map key.
//
// Why:
//
//   - The engine itself never simplifies or rewrites expressions; it only
//     needs to distinguish "evaluate now" from "defer and hand back a
//     node". Keeping this surface minimal keeps the real symbolic system
//     swappable.
//
// The package has no dependencies and performs no arithmetic.
package expr
