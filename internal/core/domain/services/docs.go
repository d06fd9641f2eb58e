// Package services contains the domain services that make up the order
// workflow pipeline: validation, pricing, and acknowledgement/event
// derivation. Each stage consumes the previous stage's fully validated output
// type and produces the next, so the type system, not run-time checks, ensures
// a stage can never receive less-validated data than it requires.
//
// Every stage fails fast: the first violation aborts the stage with a single
// descriptive failure, and no partial results survive. The stages are
// stateless; collaborators are injected at construction and used read-only,
// so one service instance can serve any number of concurrent orders.
package services
