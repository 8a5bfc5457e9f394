package ranking

// Merge interleaves two ascending rankings into one ascending ranking.
// When both heads carry the same rank the left operand's element is
// emitted first; this tie-break is part of the contract.
// Merging with an empty ranking returns the other operand's chain.
func Merge[T any](a, b Ranking[T]) Ranking[T] {
	return fromHeadBound(min(a.bound, b.bound), func() *Element[T] {
		return mergeStep(a, b)
	})
}

// mergeStep emits the next element of the interleave. A side whose bound
// already places it after the other side's forced head is left unforced,
// so a corecursive operand is only forced once elements at its depth are
// actually demanded.
func mergeStep[T any](a, b Ranking[T]) *Element[T] {
	if a.bound <= b.bound {
		ha := a.Head()
		if ha.IsTerminal() {
			return b.Head()
		}
		if ha.Rank() <= b.bound {
			logger.Debug("merge: left emitted without forcing right", "rank", ha.Rank(), "rightBound", b.bound)
			return emitLeft(ha, b)
		}
		return mergeHeads(ha, b.Head())
	}
	hb := b.Head()
	if hb.IsTerminal() {
		return a.Head()
	}
	// strict: a tie must still go to the left operand
	if hb.Rank() < a.bound {
		logger.Debug("merge: right emitted without forcing left", "rank", hb.Rank(), "leftBound", a.bound)
		return emitRight(a, hb)
	}
	return mergeHeads(a.Head(), hb)
}

func mergeHeads[T any](ha, hb *Element[T]) *Element[T] {
	if ha.IsTerminal() {
		return hb
	}
	if hb.IsTerminal() {
		return ha
	}
	if ha.Rank() <= hb.Rank() {
		return emitLeft(ha, at(hb))
	}
	return emitRight(at(ha), hb)
}

func emitLeft[T any](ha *Element[T], b Ranking[T]) *Element[T] {
	return newElement(ha.Rank(),
		ha.Value,
		func() *Element[T] { return mergeStep(tailOf(ha), b) },
	)
}

func emitRight[T any](a Ranking[T], hb *Element[T]) *Element[T] {
	return newElement(hb.Rank(),
		hb.Value,
		func() *Element[T] { return mergeStep(a, tailOf(hb)) },
	)
}

// MergeAll folds Merge over its operands left to right:
// MergeAll(r1, r2, r3) = Merge(Merge(r1, r2), r3). The fold direction is
// canonical: among three or more equal-rank heads, output follows
// argument order, because the binary tie-break always prefers the left
// side and earlier operands nest deeper on the left.
func MergeAll[T any](rs ...Ranking[T]) Ranking[T] {
	if len(rs) == 0 {
		return Failure[T]()
	}
	out := rs[0]
	for _, r := range rs[1:] {
		out = Merge(out, r)
	}
	return out
}
