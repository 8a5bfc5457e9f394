// Package ranking implements uncertain computation in the sense of
// Ranking Theory: each possible outcome of a computation carries an
// integer rank, where 0 is the normal outcome, larger ranks are
// increasingly surprising, and Infinity marks the impossible.
//
// A Ranking is a lazily produced, possibly infinite chain of
// (value, rank) elements in ascending rank order. Combinators never
// force more of a chain than a consumer demands, which is what makes
// infinite and self-referential rankings (via [Defer]) representable.
// Every combinator returns a new Ranking and never mutates its source,
// so rankings are safe to share between binding sites.
//
// The invariant every combinator preserves is that ranks never decrease
// along a chain. [CheckCorrectness] verifies it; a combinator violating
// it is a bug.
package ranking
