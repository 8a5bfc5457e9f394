package util

import (
	"iter"
)

// Collect2 materialises a two-valued iterator into a slice of pairs,
// preserving iteration order.
func Collect2[A, B any](seq iter.Seq2[A, B]) []Pair[A, B] {
	var out []Pair[A, B]
	for a, b := range seq {
		out = append(out, NewPair(a, b))
	}
	return out
}

// Take2 collects at most n entries of a two-valued iterator, without
// pulling past the nth.
func Take2[A, B any](n int, seq iter.Seq2[A, B]) []Pair[A, B] {
	if n <= 0 {
		return nil
	}
	out := make([]Pair[A, B], 0, n)
	for a, b := range seq {
		out = append(out, NewPair(a, b))
		if len(out) == n {
			break
		}
	}
	return out
}
