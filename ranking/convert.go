package ranking

import (
	"maps"

	"github.com/cottand/krank/util"
)

// ToAssoc materialises a ranking into an ordered association list,
// deduplicated so each value appears at its lowest rank. The ranking
// must be finite.
func ToAssoc[T any](r Ranking[T]) []util.Pair[T, Rank] {
	return util.Collect2(Dedup(r).All())
}

// ToMap materialises a ranking into a value-to-rank map. The first
// occurrence of a value wins, which is its lowest rank since the stream
// ascends. The ranking must be finite.
func ToMap[T comparable](r Ranking[T]) map[T]Rank {
	out := map[T]Rank{}
	for v, k := range r.All() {
		if _, ok := out[v]; !ok {
			out[v] = k
		}
	}
	return out
}

// ArgMin returns every distinct value at the ranking's minimal rank, in
// emission order. Only the leading run of equal-rank elements is forced,
// so infinite rankings are fine. An empty ranking yields nil.
func ArgMin[T any](r Ranking[T]) []T {
	var out []T
	var minRank Rank
	for v, k := range Dedup(r).All() {
		if out == nil {
			minRank = k
		} else if k != minRank {
			break
		}
		out = append(out, v)
	}
	return out
}

// TopK returns the k lowest-ranked distinct values, fewer when the
// ranking runs out first. Nothing past the kth element is forced.
func TopK[T any](k int, r Ranking[T]) []T {
	if k <= 0 {
		return nil
	}
	var out []T
	for v := range Dedup(r).All() {
		out = append(out, v)
		if len(out) == k {
			break
		}
	}
	return out
}

// Equal reports whether two finite rankings denote the same function
// from values to ranks, independent of order among equal ranks.
func Equal[T comparable](a, b Ranking[T]) bool {
	return maps.Equal(ToMap(a), ToMap(b))
}
