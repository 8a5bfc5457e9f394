package ranking

// Operand is a "ranking-or-value" argument, the explicit form of the
// coercion applied at the boundary of every combinator that accepts
// either: a plain value stands for the singleton ranking holding it at
// rank 0.
type Operand[T any] struct {
	r      Ranking[T]
	v      T
	lifted bool
}

// Just lifts a plain value: the operand denotes the value at rank 0.
func Just[T any](v T) Operand[T] {
	return Operand[T]{v: v, lifted: true}
}

// From passes a ranking through unchanged.
func From[T any](r Ranking[T]) Operand[T] {
	return Operand[T]{r: r}
}

// Ranking resolves the operand to a ranking. The zero operand resolves
// to Failure.
func (o Operand[T]) Ranking() Ranking[T] {
	if o.lifted {
		return Truth(o.v)
	}
	return o.r
}
