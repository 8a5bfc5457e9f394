package ranking

import (
	"reflect"

	"github.com/hashicorp/go-set/v3"
)

// Option configures a dedup-wrapped combinator at the call site. There
// is no process-wide toggle.
type Option func(*options)

type options struct {
	dedup bool
}

// WithoutDedup disables the deduplication wrap of a construction
// combinator. Diagnostics only: the raw merged stream becomes visible,
// with duplicate values at every rank they occur.
func WithoutDedup() Option {
	return func(o *options) {
		o.dedup = false
	}
}

func newOptions(opts []Option) options {
	o := options{dedup: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func maybeDedup[T any](r Ranking[T], opts []Option) Ranking[T] {
	if newOptions(opts).dedup {
		return Dedup(r)
	}
	return r
}

// Dedup emits each distinct hashable value exactly once, at the lowest
// rank it occurs at; since the source ascends, that is its first
// occurrence. Values whose dynamic type is not hashable are never
// deduplicated and pass through at every occurrence. Streaming: one
// seen-set lookup per element, so infinite sources are fine as long as
// they keep producing fresh values.
func Dedup[T any](r Ranking[T]) Ranking[T] {
	seen := set.New[any](8)
	return fromHeadBound(r.bound, func() *Element[T] {
		return dedupElem(seen, r.Head())
	})
}

func dedupElem[T any](seen *set.Set[any], e *Element[T]) *Element[T] {
	for ; !e.IsTerminal(); e = e.Next() {
		fresh, ok := tryInsert(seen, e.Value())
		if !ok {
			logger.Debug("dedup: unhashable value passed through", "rank", e.Rank())
		} else if !fresh {
			continue
		}
		cur := e
		return newElement(cur.Rank(),
			cur.Value,
			func() *Element[T] { return dedupElem(seen, cur.Next()) },
		)
	}
	return e
}

// tryInsert records v as seen. fresh reports whether v was absent from
// the set; ok is false when v cannot be hashed. The static type check
// is only a fast path: a value of a comparable type can still hold an
// unhashable interior (a struct or array element boxing a slice), and
// that surfaces as a panic from the map insert, so the insert is
// recovered and the value treated as unhashable.
func tryInsert(seen *set.Set[any], v any) (fresh, ok bool) {
	if v == nil {
		return seen.Insert(v), true
	}
	if !reflect.TypeOf(v).Comparable() {
		return false, false
	}
	defer func() {
		if recover() != nil {
			fresh, ok = false, false
		}
	}()
	return seen.Insert(v), true
}
