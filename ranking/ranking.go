package ranking

import (
	"iter"

	"github.com/cottand/krank/internal/log"
)

var logger = log.DefaultLogger.With("section", "ranking")

// Ranking is a lazy, restartable, ascending-by-rank sequence of
// (value, rank) elements. It is a value-like handle: copies share the
// same memoized chain, and no combinator ever mutates a source ranking.
//
// The zero value is an empty ranking, equivalent to [Failure].
type Ranking[T any] struct {
	head func() *Element[T]
	// bound is a lower bound on every rank in the chain, known without
	// forcing the head. Merge uses it to emit from one operand without
	// forcing the other, which is what lets corecursive definitions
	// (a Shift of a Defer of themselves) make progress.
	bound Rank
}

func fromHead[T any](head func() *Element[T]) Ranking[T] {
	return fromHeadBound(0, head)
}

func fromHeadBound[T any](bound Rank, head func() *Element[T]) Ranking[T] {
	return Ranking[T]{bound: bound, head: delay(head)}
}

// Head forces and returns the first element, which is terminal when the
// ranking is empty.
func (r Ranking[T]) Head() *Element[T] {
	if r.head == nil {
		return terminal[T]()
	}
	return r.head()
}

// tailOf is the rest of a chain after e. Since chains ascend, e's own
// rank bounds everything after it.
func tailOf[T any](e *Element[T]) Ranking[T] {
	return fromHeadBound(e.Rank(), e.Next)
}

// at wraps an already-forced element back into a ranking.
func at[T any](e *Element[T]) Ranking[T] {
	return fromHeadBound(e.Rank(), func() *Element[T] { return e })
}

// All yields the ranking's (value, rank) pairs in ascending rank order.
// The terminal is never yielded. This is the only surface external
// consumers need: it forces exactly as many elements as are ranged over.
func (r Ranking[T]) All() iter.Seq2[T, Rank] {
	return func(yield func(T, Rank) bool) {
		for e := r.Head(); !e.IsTerminal(); e = e.Next() {
			if !yield(e.Value(), e.Rank()) {
				return
			}
		}
	}
}

// Truth is the ranking in which v is the only outcome, at rank 0.
func Truth[T any](v T) Ranking[T] {
	return fromHead(func() *Element[T] {
		return newElement(0, func() T { return v }, terminal[T])
	})
}

// Failure is the empty ranking: no outcome is possible.
func Failure[T any]() Ranking[T] {
	return fromHead(terminal[T])
}

// Defer builds a ranking from a function producing one, calling it only
// when the head is first forced. A recursive function returning a ranking
// that wraps its own recursive call in Defer is the supported way to
// write self-referential rankings.
func Defer[T any](f func() Ranking[T]) Ranking[T] {
	return fromHead(func() *Element[T] {
		return f().Head()
	})
}
