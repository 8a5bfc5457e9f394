package ranking

import (
	"math"
	"strconv"

	"github.com/cottand/krank/rankerr"
)

// Rank is a degree of surprise: 0 is the normal outcome, larger values
// are increasingly surprising, and Infinity is impossible.
type Rank uint64

// Infinity is the rank of impossible outcomes. It is also the rank of the
// terminal element that ends every finite ranking.
const Infinity Rank = math.MaxUint64

// NewRank validates n as a rank. Negative values are rejected with an
// InvalidRank error before any lazy work can observe them.
func NewRank(n int) (Rank, error) {
	if n < 0 {
		return 0, rankerr.New(rankerr.NewInvalidRank{Value: int64(n)})
	}
	return Rank(n), nil
}

func (r Rank) IsInfinite() bool {
	return r == Infinity
}

// Plus adds two ranks, saturating at Infinity.
func (r Rank) Plus(o Rank) Rank {
	if r.IsInfinite() || o.IsInfinite() {
		return Infinity
	}
	sum := r + o
	if sum < r {
		return Infinity
	}
	return sum
}

// Minus subtracts o from r, clamping at 0. Infinity stays Infinity: an
// impossible outcome cannot be made possible by normalisation.
func (r Rank) Minus(o Rank) Rank {
	if r.IsInfinite() {
		return Infinity
	}
	if o >= r {
		return 0
	}
	return r - o
}

func (r Rank) String() string {
	if r.IsInfinite() {
		return "∞"
	}
	return strconv.FormatUint(uint64(r), 10)
}
