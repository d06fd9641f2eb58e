// Package kernel contains the constrained value types shared across the
// order-taking domain. Every type in this package follows the smart-constructor
// pattern: the representation is private, the constructor is the only way to
// obtain an instance, and a value that exists is guaranteed to satisfy its
// invariant for its whole lifetime. There are no setters.
//
// Constructors take the field name they are validating so failure messages can
// identify the field, the violated rule, and (for pattern rules) the raw
// value and the pattern. All constructors are pure, deterministic, and safe to
// call from concurrent goroutines.
//
// The closed variants (ProductCode with its Widget/Gizmo kinds, OrderQuantity
// with its Unit/Kilogram kinds) are modelled as structs with an unexported
// kind tag; downstream code switches exhaustively on the kind accessor.
// An OrderQuantity is variant-locked at construction time: a Widget code can
// only ever produce a unit quantity and a Gizmo code only a kilogram quantity.
package kernel
