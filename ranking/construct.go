package ranking

import (
	"github.com/pkg/errors"

	"github.com/cottand/krank/util"
)

// NrmExc is the binary normal/exceptional choice: the normal operand at
// rank 0, the exceptional operand shifted by exceptionRank, merged,
// normalised, and deduplicated. Operands may themselves be rankings, so
// nested ranked choices compose.
func NrmExc[T any](normal, exceptional Operand[T], exceptionRank Rank, opts ...Option) Ranking[T] {
	merged := Merge(normal.Ranking(), Shift(exceptionRank, exceptional.Ranking()))
	return maybeDedup(Normalise(merged), opts)
}

// EitherOf finds all values of the list equally plausible, at rank 0,
// keeping their order. An empty list is Failure.
func EitherOf[T any](values []T, opts ...Option) Ranking[T] {
	if len(values) == 0 {
		return Failure[T]()
	}
	pairs := make([]util.Pair[T, Rank], len(values))
	for i, v := range values {
		pairs[i] = util.NewPair(v, Rank(0))
	}
	return maybeDedup(FromAssoc(pairs), opts)
}

// EitherOr merges any number of ranking-or-value operands at rank 0,
// with no shift, deduplicated. With no operands it is Failure.
func EitherOr[T any](operands ...Operand[T]) Ranking[T] {
	if len(operands) == 0 {
		return Failure[T]()
	}
	rs := make([]Ranking[T], len(operands))
	for i, op := range operands {
		rs[i] = op.Ranking()
	}
	return Dedup(MergeAll(rs...))
}

// FromAssoc builds a ranking directly from explicit (value, rank) pairs,
// trusting their order. A pair at rank Infinity ends the chain.
func FromAssoc[T any](pairs []util.Pair[T, Rank]) Ranking[T] {
	return fromHead(func() *Element[T] {
		return assocElem(pairs)
	})
}

func assocElem[T any](pairs []util.Pair[T, Rank]) *Element[T] {
	if len(pairs) == 0 || pairs[0].Snd.IsInfinite() {
		return terminal[T]()
	}
	p := pairs[0]
	return newElement(p.Snd,
		func() T { return p.Fst },
		func() *Element[T] { return assocElem(pairs[1:]) },
	)
}

// ConstructRanking is FromAssoc plus validation: the pairs must already
// be in non-decreasing rank order, and out-of-order input fails with an
// OrderViolation naming the offending ranks. A low-level primitive for
// tests and tooling, not for unsorted ad hoc data.
func ConstructRanking[T any](pairs ...util.Pair[T, Rank]) (Ranking[T], error) {
	r := FromAssoc(pairs)
	if err := CheckCorrectness(r); err != nil {
		return Failure[T](), errors.Wrap(err, "construct ranking")
	}
	return r, nil
}
