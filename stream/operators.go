package stream

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	apperrors "github.com/kbukum/seqkit/errors"
)

// Map transforms each value using fn. The output has exactly as many values
// as the input.
func Map[T, R any](s *Stream[T], fn func(T) R) *Stream[R] {
	return derive(s, func(ctx context.Context) Iterator[R] {
		return &mapIter[T, R]{source: s.create(ctx), fn: fn}
	})
}

// Filter keeps only values that satisfy the predicate.
func Filter[T any](s *Stream[T], fn func(T) bool) *Stream[T] {
	return derive(s, func(ctx context.Context) Iterator[T] {
		return &filterIter[T]{source: s.create(ctx), fn: fn}
	})
}

// FlatMap replaces each value with the values of the stream fn returns for it.
// Inner streams are drained in input order. A nil inner stream contributes
// nothing. Inner streams are expected to be bounded.
func FlatMap[T, R any](s *Stream[T], fn func(T) *Stream[R]) *Stream[R] {
	return derive(s, func(ctx context.Context) Iterator[R] {
		return &flatMapIter[T, R]{
			source: s.create(ctx),
			expand: func(ctx context.Context, v T) Iterator[R] {
				inner := fn(v)
				if inner == nil {
					return &sliceIter[R]{}
				}
				return inner.Iter(ctx)
			},
		}
	})
}

// FlatMapSlice replaces each value with the elements of the slice fn returns for it.
func FlatMapSlice[T, R any](s *Stream[T], fn func(T) []R) *Stream[R] {
	return derive(s, func(ctx context.Context) Iterator[R] {
		return &flatMapIter[T, R]{
			source: s.create(ctx),
			expand: func(_ context.Context, v T) Iterator[R] {
				return &sliceIter[R]{items: fn(v)}
			},
		}
	})
}

// Peek calls fn for each value as it passes, then yields it unchanged.
func Peek[T any](s *Stream[T], fn func(T)) *Stream[T] {
	return peek(s, func(_ context.Context, v T) { fn(v) })
}

func peek[T any](s *Stream[T], fn func(context.Context, T)) *Stream[T] {
	return derive(s, func(ctx context.Context) Iterator[T] {
		return &peekIter[T]{source: s.create(ctx), fn: fn}
	})
}

// Distinct drops values equal to one already emitted during the current
// evaluation. The first occurrence wins, so order is preserved.
func Distinct[T comparable](s *Stream[T]) *Stream[T] {
	return DistinctBy(s, func(v T) T { return v })
}

// DistinctBy drops values whose key was already emitted during the current
// evaluation.
func DistinctBy[T any, K comparable](s *Stream[T], key func(T) K) *Stream[T] {
	return derive(s, func(ctx context.Context) Iterator[T] {
		return &distinctIter[T, K]{source: s.create(ctx), key: key, seen: make(map[K]struct{})}
	})
}

// Sorted emits the values in ascending natural order.
// See SortedFunc.
func Sorted[T cmp.Ordered](s *Stream[T]) *Stream[T] {
	return sortedBy(s, "Sorted", cmp.Compare[T])
}

// SortedFunc emits the values ordered by compare. The sort is stable.
// The whole upstream is buffered before the first value is emitted, so an
// unbounded upstream makes the stream fail with UNBOUNDED_EVALUATION.
func SortedFunc[T any](s *Stream[T], compare func(a, b T) int) *Stream[T] {
	return sortedBy(s, "SortedFunc", compare)
}

func sortedBy[T any](s *Stream[T], op string, compare func(a, b T) int) *Stream[T] {
	out := derive(s, func(ctx context.Context) Iterator[T] {
		return &sortedIter[T]{source: s.create(ctx), compare: compare}
	})
	if !s.bounded {
		return withFault(out, apperrors.UnboundedEvaluation(op))
	}
	return out
}

// Limit yields at most n values, then stops pulling from upstream.
// The result is bounded even when the upstream is not.
func Limit[T any](s *Stream[T], n int) *Stream[T] {
	out := derive(s, func(ctx context.Context) Iterator[T] {
		return &limitIter[T]{source: s.create(ctx), n: n}
	})
	out.bounded = true
	if n < 0 {
		return withFault(out, apperrors.InvalidArgument("limit", fmt.Sprintf("must be non-negative, got %d", n)))
	}
	return out
}

// Skip drops the first n values.
func Skip[T any](s *Stream[T], n int) *Stream[T] {
	out := derive(s, func(ctx context.Context) Iterator[T] {
		return &skipIter[T]{source: s.create(ctx), n: n}
	})
	if n < 0 {
		return withFault(out, apperrors.InvalidArgument("skip", fmt.Sprintf("must be non-negative, got %d", n)))
	}
	return out
}

// --- Iterator implementations ---

type mapIter[T, R any] struct {
	source Iterator[T]
	fn     func(T) R
}

func (it *mapIter[T, R]) Next(ctx context.Context) (result R, ok bool, err error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return result, false, err
	}
	return it.fn(val), true, nil
}

func (it *mapIter[T, R]) Close() error { return it.source.Close() }

type filterIter[T any] struct {
	source Iterator[T]
	fn     func(T) bool
}

func (it *filterIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return val, false, err
		}
		if it.fn(val) {
			return val, true, nil
		}
	}
}

func (it *filterIter[T]) Close() error { return it.source.Close() }

type flatMapIter[T, R any] struct {
	source  Iterator[T]
	expand  func(context.Context, T) Iterator[R]
	current Iterator[R]
}

func (it *flatMapIter[T, R]) Next(ctx context.Context) (result R, ok bool, err error) {
	for {
		if it.current != nil {
			val, ok, err := it.current.Next(ctx)
			if err != nil {
				return result, false, err
			}
			if ok {
				return val, true, nil
			}
			_ = it.current.Close()
			it.current = nil
		}
		in, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return result, false, err
		}
		it.current = it.expand(ctx, in)
	}
}

func (it *flatMapIter[T, R]) Close() error {
	if it.current != nil {
		_ = it.current.Close()
		it.current = nil
	}
	return it.source.Close()
}

type peekIter[T any] struct {
	source Iterator[T]
	fn     func(context.Context, T)
}

func (it *peekIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return val, ok, err
	}
	it.fn(ctx, val)
	return val, true, nil
}

func (it *peekIter[T]) Close() error { return it.source.Close() }

type distinctIter[T any, K comparable] struct {
	source Iterator[T]
	key    func(T) K
	seen   map[K]struct{}
}

func (it *distinctIter[T, K]) Next(ctx context.Context) (result T, ok bool, err error) {
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return val, false, err
		}
		k := it.key(val)
		if _, dup := it.seen[k]; dup {
			continue
		}
		it.seen[k] = struct{}{}
		return val, true, nil
	}
}

func (it *distinctIter[T, K]) Close() error { return it.source.Close() }

type sortedIter[T any] struct {
	source  Iterator[T]
	compare func(a, b T) int
	buf     []T
	index   int
	loaded  bool
}

func (it *sortedIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	if !it.loaded {
		for {
			val, ok, err := it.source.Next(ctx)
			if err != nil {
				return result, false, err
			}
			if !ok {
				break
			}
			it.buf = append(it.buf, val)
		}
		slices.SortStableFunc(it.buf, it.compare)
		it.loaded = true
	}
	if it.index >= len(it.buf) {
		return result, false, nil
	}
	val := it.buf[it.index]
	it.index++
	return val, true, nil
}

func (it *sortedIter[T]) Close() error { return it.source.Close() }

type limitIter[T any] struct {
	source Iterator[T]
	n      int
	count  int
}

func (it *limitIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	if it.count >= it.n {
		return result, false, nil
	}
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return val, false, err
	}
	it.count++
	return val, true, nil
}

func (it *limitIter[T]) Close() error { return it.source.Close() }

type skipIter[T any] struct {
	source  Iterator[T]
	n       int
	skipped bool
}

func (it *skipIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	if !it.skipped {
		it.skipped = true
		for range it.n {
			_, ok, err := it.source.Next(ctx)
			if err != nil || !ok {
				return result, false, err
			}
		}
	}
	return it.source.Next(ctx)
}

func (it *skipIter[T]) Close() error { return it.source.Close() }
