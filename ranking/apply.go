package ranking

import (
	"github.com/cottand/krank/rankerr"
	"github.com/cottand/krank/util"
)

// MergeApply expands each choice of r into its own sub-ranking via f,
// shifts the sub-ranking by the choice's rank, and merges everything
// back into a single ascending ranking. Both r and any sub-ranking may
// be infinite: the recursion over r's tail is suspended behind a thunk,
// so nothing is forced ahead of demand.
//
// The two streams handed to Merge are re-sorted by Merge itself; a later
// choice's expansion may legitimately produce lower combined ranks than
// values still pending from an earlier choice, so concatenation would be
// wrong.
func MergeApply[A, B any](r Ranking[A], f func(A) Ranking[B]) Ranking[B] {
	return fromHeadBound(r.bound, func() *Element[B] {
		h := r.Head()
		if h.IsTerminal() {
			return terminal[B]()
		}
		logger.Debug("merge-apply: expanding choice", "rank", h.Rank())
		sub := Shift(h.Rank(), f(h.Value()))
		rest := MergeApply(tailOf(h), f)
		return mergeStep(sub, rest)
	})
}

// Join is the cartesian pairing of two rankings: each pair's rank is the
// sum of its components' ranks, and pairs come out in ascending order of
// that sum.
func Join[A, B any](a Ranking[A], b Ranking[B]) Ranking[util.Pair[A, B]] {
	return MergeApply(a, func(x A) Ranking[util.Pair[A, B]] {
		return Map(func(y B) util.Pair[A, B] {
			return util.NewPair(x, y)
		}, b)
	})
}

// Apply2 is ranked function application: f over every combination of the
// two operands, at the sum of their ranks. Results are deduplicated
// unless WithoutDedup is given.
func Apply2[A, B, C any](f func(A, B) C, a Operand[A], b Operand[B], opts ...Option) Ranking[C] {
	res := Map(func(p util.Pair[A, B]) C {
		return f(p.Fst, p.Snd)
	}, Join(a.Ranking(), b.Ranking()))
	return maybeDedup(res, opts)
}

// Apply3 is Apply2 for three operands.
func Apply3[A, B, C, D any](f func(A, B, C) D, a Operand[A], b Operand[B], c Operand[C], opts ...Option) Ranking[D] {
	res := Map(func(p util.Pair[util.Pair[A, B], C]) D {
		return f(p.Fst.Fst, p.Fst.Snd, p.Snd)
	}, Join(Join(a.Ranking(), b.Ranking()), c.Ranking()))
	return maybeDedup(res, opts)
}

// ApplyN applies f to every combination of any number of ranked
// operands: the tuple handed to f ranks at the sum of the component
// ranks, and when f's result is itself a ranking it is flattened one
// further level. This is the heterogeneous form underlying ranked let:
// independent bindings combine as a cartesian product, and a body
// returning an Operand built From a ranking composes one level deeper.
//
// Invoking ApplyN with a nil function or no operands is an arity error,
// raised before any lazy work.
func ApplyN(f func(values ...any) Operand[any], operands ...Operand[any]) (Ranking[any], error) {
	if f == nil {
		return Failure[any](), rankerr.New(rankerr.NewArity{
			Combinator: "ranked application",
			Reason:     "no function operand",
		})
	}
	if len(operands) == 0 {
		return Failure[any](), rankerr.New(rankerr.NewArity{
			Combinator: "ranked application",
			Reason:     "no argument operands",
		})
	}
	tuples := Truth(make([]any, 0, len(operands)))
	for _, op := range operands {
		arg := op.Ranking()
		prev := tuples
		tuples = MergeApply(prev, func(vs []any) Ranking[[]any] {
			return Map(func(v any) []any {
				next := make([]any, len(vs), len(vs)+1)
				copy(next, vs)
				return append(next, v)
			}, arg)
		})
	}
	out := MergeApply(tuples, func(vs []any) Ranking[any] {
		return f(vs...).Ranking()
	})
	return Dedup(out), nil
}
