package ranking

// delay memoizes a thunk: the wrapped function runs at most once, on the
// first force, and every later force returns the cached result. This is
// what makes a chain traversable many times without re-running effects.
func delay[T any](f func() T) func() T {
	var (
		forced bool
		cached T
	)
	return func() T {
		if !forced {
			cached = f()
			forced = true
			f = nil
		}
		return cached
	}
}

// Element is one node of a lazy chain: an immutable (value-thunk, rank,
// successor-thunk) triple. Elements are created only by combinators and
// never mutated afterwards.
type Element[T any] struct {
	value func() T
	rank  Rank
	next  func() *Element[T]
}

func newElement[T any](rank Rank, value func() T, next func() *Element[T]) *Element[T] {
	return &Element[T]{
		rank:  rank,
		value: delay(value),
		next:  delay(next),
	}
}

// terminal builds the end-of-chain sentinel: rank Infinity, its own
// successor. Terminals are recognised by their infinite rank, never by
// identity, so independently built terminals are interchangeable.
func terminal[T any]() *Element[T] {
	e := &Element[T]{rank: Infinity}
	e.next = func() *Element[T] { return e }
	return e
}

func (e *Element[T]) Rank() Rank {
	return e.rank
}

// IsTerminal reports whether e marks end-of-stream.
func (e *Element[T]) IsTerminal() bool {
	return e.rank.IsInfinite()
}

// Value forces and returns the element's value. Calling Value on a
// terminal element panics: consumers must stop at the terminal.
func (e *Element[T]) Value() T {
	if e.IsTerminal() {
		panic("ranking: Value forced on a terminal element")
	}
	return e.value()
}

// Next forces and returns the successor element. The terminal is its own
// successor.
func (e *Element[T]) Next() *Element[T] {
	if e.IsTerminal() {
		return e
	}
	return e.next()
}
