package ranking

import (
	"github.com/cottand/krank/rankerr"
)

// Map lazily transforms every value through f. Ranks and ordering are
// untouched, and f is never applied to the terminal.
func Map[A, B any](f func(A) B, r Ranking[A]) Ranking[B] {
	return fromHeadBound(r.bound, func() *Element[B] {
		return mapElem(f, r.Head())
	})
}

func mapElem[A, B any](f func(A) B, e *Element[A]) *Element[B] {
	if e.IsTerminal() {
		return terminal[B]()
	}
	return newElement(e.Rank(),
		func() B { return f(e.Value()) },
		func() *Element[B] { return mapElem(f, e.Next()) },
	)
}

// Shift adds n to every rank. Shifting by Infinity, or past it, yields
// the empty ranking: those outcomes have become impossible.
func Shift[T any](n Rank, r Ranking[T]) Ranking[T] {
	if n == 0 {
		return r
	}
	return fromHeadBound(r.bound.Plus(n), func() *Element[T] {
		return shiftElem(n, r.Head())
	})
}

func shiftElem[T any](n Rank, e *Element[T]) *Element[T] {
	if e.IsTerminal() || e.Rank().Plus(n).IsInfinite() {
		return terminal[T]()
	}
	return newElement(e.Rank().Plus(n),
		e.Value,
		func() *Element[T] { return shiftElem(n, e.Next()) },
	)
}

// Normalise subtracts the minimum rank, which is the first element's rank
// since chains ascend, so the lowest surviving rank becomes 0. A single
// lazy left-to-right pass.
func Normalise[T any](r Ranking[T]) Ranking[T] {
	return fromHead(func() *Element[T] {
		h := r.Head()
		if h.IsTerminal() {
			return h
		}
		logger.Debug("normalise", "min", h.Rank())
		return normElem(h.Rank(), h)
	})
}

func normElem[T any](min Rank, e *Element[T]) *Element[T] {
	if e.IsTerminal() {
		return e
	}
	return newElement(e.Rank().Minus(min),
		e.Value,
		func() *Element[T] { return normElem(min, e.Next()) },
	)
}

// Filter keeps only values satisfying pred, streaming; the result ends
// where the source runs out of matches.
func Filter[T any](pred func(T) bool, r Ranking[T]) Ranking[T] {
	return fromHeadBound(r.bound, func() *Element[T] {
		return filterElem(pred, r.Head())
	})
}

func filterElem[T any](pred func(T) bool, e *Element[T]) *Element[T] {
	for ; !e.IsTerminal(); e = e.Next() {
		if pred(e.Value()) {
			cur := e
			return newElement(cur.Rank(),
				cur.Value,
				func() *Element[T] { return filterElem(pred, cur.Next()) },
			)
		}
	}
	return e
}

// Limit keeps the first n elements regardless of their rank. Negative n
// is an InvalidRank error.
func Limit[T any](n int, r Ranking[T]) (Ranking[T], error) {
	if n < 0 {
		return Failure[T](), rankerr.New(rankerr.NewInvalidRank{Value: int64(n)})
	}
	return fromHeadBound(r.bound, func() *Element[T] {
		return limitElem(n, r.Head())
	}), nil
}

func limitElem[T any](n int, e *Element[T]) *Element[T] {
	if n <= 0 || e.IsTerminal() {
		return terminal[T]()
	}
	return newElement(e.Rank(),
		e.Value,
		func() *Element[T] { return limitElem(n-1, e.Next()) },
	)
}

// Cut keeps elements with rank <= maxRank and ends the chain at the
// first element exceeding it.
func Cut[T any](maxRank Rank, r Ranking[T]) Ranking[T] {
	return fromHeadBound(r.bound, func() *Element[T] {
		return cutElem(maxRank, r.Head())
	})
}

func cutElem[T any](maxRank Rank, e *Element[T]) *Element[T] {
	if e.IsTerminal() || e.Rank() > maxRank {
		return terminal[T]()
	}
	return newElement(e.Rank(),
		e.Value,
		func() *Element[T] { return cutElem(maxRank, e.Next()) },
	)
}

// CheckCorrectness walks r and verifies ranks never decrease, reporting
// the first offending pair of ranks. It never reorders anything. The
// ranking must be finite.
func CheckCorrectness[T any](r Ranking[T]) error {
	prev := Rank(0)
	pos := 0
	for e := r.Head(); !e.IsTerminal(); e = e.Next() {
		if e.Rank() < prev {
			return rankerr.New(rankerr.NewOrderViolation{
				Position:  pos,
				Prev:      prev.String(),
				Offending: e.Rank().String(),
			})
		}
		prev = e.Rank()
		pos++
	}
	return nil
}
