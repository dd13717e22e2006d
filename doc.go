// Package predlogic implements a small first-order predicate logic
// engine built on top of the untyped lambda calculus: a tagged
// Expression algebra (capture-avoiding substitution, alpha-equivalence,
// beta-reduction) and a recursive-descent parser that normalizes three
// interchangeable concrete syntaxes — legacy word form, symbolic form,
// and a theorem-prover-compatible form — into the same abstract syntax.
//
// The package is deliberately small: it has no type checker, no
// semantic evaluator, and no normalization past head-normal form. See
// Parse, Expression, and TPEquivalent for the three entry points most
// callers need.
package predlogic
