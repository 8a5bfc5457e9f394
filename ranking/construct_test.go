package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cottand/krank/rankerr"
	"github.com/cottand/krank/util"
)

func TestNrmExc(t *testing.T) {
	testCases := []struct {
		name     string
		got      Ranking[int]
		expected []util.Pair[int, Rank]
	}{
		{
			name:     "normal then exceptional",
			got:      NrmExc(Just(1), Just(2), 1),
			expected: []util.Pair[int, Rank]{pl(1, 0), pl(2, 1)},
		},
		{
			name:     "dedup collapses equal branches",
			got:      NrmExc(Just(1), Just(1), 1),
			expected: []util.Pair[int, Rank]{pl(1, 0)},
		},
		{
			name:     "nested choices compose",
			got:      NrmExc(Just(1), From(NrmExc(Just(2), Just(3), 1)), 1),
			expected: []util.Pair[int, Rank]{pl(1, 0), pl(2, 1), pl(3, 2)},
		},
		{
			name:     "exception rank of zero merges both at the front",
			got:      NrmExc(Just(1), Just(2), 0),
			expected: []util.Pair[int, Rank]{pl(1, 0), pl(2, 0)},
		},
		{
			name:     "infinite exception rank discards the exceptional part",
			got:      NrmExc(Just(1), Just(2), Infinity),
			expected: []util.Pair[int, Rank]{pl(1, 0)},
		},
		{
			name:     "normalises when the normal part is itself surprising",
			got:      NrmExc(From(FromAssoc([]util.Pair[int, Rank]{pl(1, 2)})), Just(2), 1),
			expected: []util.Pair[int, Rank]{pl(2, 0), pl(1, 1)},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, rawPairs(tc.got))
		})
	}
}

func TestEitherOf(t *testing.T) {
	t.Run("all values equally plausible, order kept", func(t *testing.T) {
		r := EitherOf([]int{3, 1, 2})
		assert.Equal(t, []util.Pair[int, Rank]{pl(3, 0), pl(1, 0), pl(2, 0)}, rawPairs(r))
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		r := EitherOf([]int{1, 1, 2})
		assert.Equal(t, []util.Pair[int, Rank]{pl(1, 0), pl(2, 0)}, rawPairs(r))
	})

	t.Run("empty list is failure", func(t *testing.T) {
		assert.Empty(t, rawPairs(EitherOf[int](nil)))
	})
}

func TestEitherOr(t *testing.T) {
	t.Run("operands merge at rank zero with no shift", func(t *testing.T) {
		r := EitherOr(Just(1), From(NrmExc(Just(2), Just(3), 1)))
		assert.Equal(t, []util.Pair[int, Rank]{pl(1, 0), pl(2, 0), pl(3, 1)}, rawPairs(r))
	})

	t.Run("duplicates across operands collapse", func(t *testing.T) {
		r := EitherOr(Just(1), From(Truth(1)))
		assert.Equal(t, []util.Pair[int, Rank]{pl(1, 0)}, rawPairs(r))
	})

	t.Run("no operands is failure", func(t *testing.T) {
		assert.Empty(t, rawPairs(EitherOr[int]()))
	})
}

func TestFromAssoc(t *testing.T) {
	t.Run("builds the chain as given", func(t *testing.T) {
		pairs := []util.Pair[int, Rank]{pl(1, 0), pl(2, 2)}
		assert.Equal(t, pairs, rawPairs(FromAssoc(pairs)))
	})

	t.Run("an infinite-rank pair ends the chain", func(t *testing.T) {
		r := FromAssoc([]util.Pair[int, Rank]{pl(1, 0), util.NewPair(2, Infinity), pl(3, 0)})
		assert.Equal(t, []util.Pair[int, Rank]{pl(1, 0)}, rawPairs(r))
	})
}

func TestConstructRanking(t *testing.T) {
	t.Run("accepts non-decreasing pairs", func(t *testing.T) {
		r, err := ConstructRanking(pl(1, 0), pl(2, 0), pl(3, 2))
		require.NoError(t, err)
		assert.Equal(t, []util.Pair[int, Rank]{pl(1, 0), pl(2, 0), pl(3, 2)}, rawPairs(r))
	})

	t.Run("rejects out-of-order pairs without reordering", func(t *testing.T) {
		_, err := ConstructRanking(pl(1, 3), pl(2, 1))
		require.Error(t, err)
		assert.Equal(t, rankerr.OrderViolation, rankerr.CodeOf(err))
		assert.Contains(t, err.Error(), "rank 1 follows rank 3")
	})
}
