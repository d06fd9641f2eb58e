// Package order contains the composite entities of the order-taking workflow
// and the domain events it emits.
//
// The types form a strict progression: an UnvalidatedOrder is raw, untrusted
// input with plain string fields; a ValidatedOrder is built exclusively from
// kernel constrained values and can only be obtained by successfully
// validating an UnvalidatedOrder; a PricedOrder can only be obtained by
// successfully pricing a ValidatedOrder. There is no raw-field escape hatch
// once an order is validated: the constructors verify every part, and the
// constructor guard makes zero values detectable.
//
// Each entity is an immutable snapshot: created by one pipeline stage and
// consumed read-only by the next. Domain events are immutable facts derived
// from a PricedOrder and handed to the caller.
package order
