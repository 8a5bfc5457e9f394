package ranking

// Observe is hard conditioning: keep only values satisfying pred, then
// normalise so the best survivor sits at rank 0. Disconfirming mass is
// discarded, not demoted. No survivors means Failure.
func Observe[T any](pred func(T) bool, r Ranking[T]) Ranking[T] {
	return Normalise(Filter(pred, r))
}

// ObserveAll keeps only values satisfying every predicate, then
// normalises. With no predicates it just normalises.
func ObserveAll[T any](r Ranking[T], preds []func(T) bool) Ranking[T] {
	return Observe(func(v T) bool {
		for _, pred := range preds {
			if !pred(v) {
				return false
			}
		}
		return true
	}, r)
}

// RankOf scans the ascending stream for the first value satisfying pred
// and returns its rank, or Infinity when none does. It stops at the
// first match and never forces the rest of the stream.
func RankOf[T any](pred func(T) bool, r Ranking[T]) Rank {
	for v, k := range r.All() {
		if pred(v) {
			return k
		}
	}
	return Infinity
}

// ObserveR is soft conditioning with result-strength semantics: both
// sides survive, and after conditioning the disconfirming side ends up
// exactly resultPenalty above the confirming side.
func ObserveR[T any](resultPenalty Rank, pred func(T) bool, r Ranking[T]) Ranking[T] {
	confirming := Observe(pred, r)
	disconfirming := Observe(func(v T) bool { return !pred(v) }, r)
	return NrmExc(From(confirming), From(disconfirming), resultPenalty)
}

// ObserveE is soft conditioning with evidence-strength semantics: the
// penalty is read relative to the original separation of the evidence,
// not the conditioned result. With rp the original rank of the first
// satisfying value, evidence weaker than rp only closes part of the gap;
// evidence at least rp flips the ranking and pushes the disconfirming
// side out by the excess.
func ObserveE[T any](evidencePenalty Rank, pred func(T) bool, r Ranking[T]) Ranking[T] {
	rp := RankOf(pred, r)
	if evidencePenalty < rp {
		return ObserveR(rp.Minus(evidencePenalty), pred, r)
	}
	rn := RankOf(func(v T) bool { return !pred(v) }, r)
	return ObserveR(evidencePenalty.Minus(rp).Plus(rn), pred, r)
}
