package ranking

import (
	"github.com/cottand/krank/util"
)

// pl builds an (int value, rank) association pair.
func pl(v, k int) util.Pair[int, Rank] {
	return util.NewPair(v, Rank(k))
}

// mustRanking builds a validated ranking from pairs, panicking on
// malformed test data.
func mustRanking(pairs ...util.Pair[int, Rank]) Ranking[int] {
	r, err := ConstructRanking(pairs...)
	if err != nil {
		panic(err)
	}
	return r
}

// rawPairs materialises a ranking without deduplication.
func rawPairs[T any](r Ranking[T]) []util.Pair[T, Rank] {
	return util.Collect2(r.All())
}
