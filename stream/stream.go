package stream

import (
	"context"
	"iter"
)

// Iterator provides pull-based sequential access to a stream of values.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// Stream is a lazy, pull-based sequence of values.
// No work happens until a terminal operation pulls values through it.
// A Stream is immutable: every operator returns a new Stream and the
// receiver can be evaluated again with the same result.
type Stream[T any] struct {
	create  func(ctx context.Context) Iterator[T]
	bounded bool
	// fault is a construction error surfaced by the first terminal call.
	fault error
}

// Bounded reports whether the stream is known to end. Streams built from
// Iterate or Generate stay unbounded until a Limit is applied.
func (s *Stream[T]) Bounded() bool { return s.bounded }

// Err returns the construction error carried by the stream, if any.
func (s *Stream[T]) Err() error { return s.fault }

// Iter returns the raw Iterator for this stream. The caller must Close() it.
// A stream carrying a construction error yields it from the first Next.
func (s *Stream[T]) Iter(ctx context.Context) Iterator[T] {
	if s.fault != nil {
		return &errIter[T]{err: s.fault}
	}
	return s.create(ctx)
}

// derive builds a stream downstream of s, inheriting its boundedness and fault.
func derive[T, R any](s *Stream[T], create func(ctx context.Context) Iterator[R]) *Stream[R] {
	return &Stream[R]{create: create, bounded: s.bounded, fault: s.fault}
}

// withFault returns s carrying err unless it already carries an earlier one.
func withFault[T any](s *Stream[T], err error) *Stream[T] {
	if s.fault != nil {
		return s
	}
	return &Stream[T]{create: s.create, bounded: s.bounded, fault: err}
}

// --- Constructors ---

// FromSlice creates a stream over the values of a slice.
func FromSlice[T any](items []T) *Stream[T] {
	return &Stream[T]{
		bounded: true,
		create: func(_ context.Context) Iterator[T] {
			return &sliceIter[T]{items: items}
		},
	}
}

// Of creates a stream over the given values.
func Of[T any](values ...T) *Stream[T] {
	return FromSlice(values)
}

// Empty returns a stream with no values.
func Empty[T any]() *Stream[T] {
	return FromSlice[T](nil)
}

// Range creates a stream of the integers in [start, end).
func Range(start, end int) *Stream[int] {
	return &Stream[int]{
		bounded: true,
		create: func(_ context.Context) Iterator[int] {
			return &rangeIter{next: start, end: end}
		},
	}
}

// Iterate creates an infinite stream seed, f(seed), f(f(seed)), ...
// The successor is only computed when the next value is pulled.
func Iterate[T any](seed T, f func(T) T) *Stream[T] {
	return &Stream[T]{
		create: func(_ context.Context) Iterator[T] {
			return &iterateIter[T]{next: seed, f: f}
		},
	}
}

// Generate creates an infinite stream whose values are produced by calling fn.
func Generate[T any](fn func() T) *Stream[T] {
	return &Stream[T]{
		create: func(_ context.Context) Iterator[T] {
			return &generateIter[T]{fn: fn}
		},
	}
}

// FromFunc creates a stream from a factory that produces an Iterator.
// The factory is called once per evaluation. The resulting stream is treated
// as bounded; wrap an infinite iterator with Limit before exhausting it.
func FromFunc[T any](fn func(ctx context.Context) Iterator[T]) *Stream[T] {
	return &Stream[T]{create: fn, bounded: true}
}

// FromSeq creates a bounded stream from a range-over-func sequence.
// Like FromFunc, the sequence is trusted to end: an exhausting terminal over
// an infinite sequence never returns, so wrap one with Limit first.
func FromSeq[T any](seq iter.Seq[T]) *Stream[T] {
	return &Stream[T]{
		bounded: true,
		create: func(_ context.Context) Iterator[T] {
			next, stop := iter.Pull(seq)
			return &seqIter[T]{next: next, stop: stop}
		},
	}
}

// Concat joins streams sequentially. All values of the first stream are
// yielded before the second is opened. The result is bounded only when every
// input is.
func Concat[T any](streams ...*Stream[T]) *Stream[T] {
	out := &Stream[T]{
		bounded: true,
		create: func(_ context.Context) Iterator[T] {
			return &concatIter[T]{streams: streams}
		},
	}
	for _, s := range streams {
		out.bounded = out.bounded && s.bounded
		if s.fault != nil && out.fault == nil {
			out.fault = s.fault
		}
	}
	return out
}

// --- Source iterators ---

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, false, err
	}
	if it.index >= len(it.items) {
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *sliceIter[T]) Close() error { return nil }

type rangeIter struct {
	next, end int
}

func (it *rangeIter) Next(ctx context.Context) (int, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}
	if it.next >= it.end {
		return 0, false, nil
	}
	val := it.next
	it.next++
	return val, true, nil
}

func (it *rangeIter) Close() error { return nil }

type iterateIter[T any] struct {
	next    T
	f       func(T) T
	started bool
}

func (it *iterateIter[T]) Next(ctx context.Context) (T, bool, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, false, err
	}
	if it.started {
		it.next = it.f(it.next)
	}
	it.started = true
	return it.next, true, nil
}

func (it *iterateIter[T]) Close() error { return nil }

type generateIter[T any] struct {
	fn func() T
}

func (it *generateIter[T]) Next(ctx context.Context) (T, bool, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, false, err
	}
	return it.fn(), true, nil
}

func (it *generateIter[T]) Close() error { return nil }

type seqIter[T any] struct {
	next func() (T, bool)
	stop func()
}

func (it *seqIter[T]) Next(ctx context.Context) (T, bool, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, false, err
	}
	val, ok := it.next()
	return val, ok, nil
}

func (it *seqIter[T]) Close() error {
	it.stop()
	return nil
}

type concatIter[T any] struct {
	streams []*Stream[T]
	index   int
	current Iterator[T]
}

func (it *concatIter[T]) Next(ctx context.Context) (T, bool, error) {
	for it.index < len(it.streams) {
		if it.current == nil {
			it.current = it.streams[it.index].create(ctx)
		}
		val, ok, err := it.current.Next(ctx)
		if err != nil {
			return val, false, err
		}
		if ok {
			return val, true, nil
		}
		_ = it.current.Close()
		it.current = nil
		it.index++
	}
	var zero T
	return zero, false, nil
}

func (it *concatIter[T]) Close() error {
	if it.current != nil {
		err := it.current.Close()
		it.current = nil
		return err
	}
	return nil
}

type errIter[T any] struct {
	err error
}

func (it *errIter[T]) Next(_ context.Context) (T, bool, error) {
	var zero T
	return zero, false, it.err
}

func (it *errIter[T]) Close() error { return nil }
