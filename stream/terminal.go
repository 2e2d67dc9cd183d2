package stream

import (
	"cmp"
	"context"
	stderrors "errors"
	"strings"

	apperrors "github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/observability"
)

// Number is the set of types Sum can add.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// optional carries a value that may be absent.
type optional[T any] struct {
	val T
	ok  bool
}

// Terminal operation names, used in spans, metrics and errors.
const (
	opForEach        = "forEach"
	opReduce         = "reduce"
	opFindFirst      = "findFirst"
	opCollect        = "collect"
	opCollectSet     = "collectSet"
	opToMap          = "toMap"
	opToMapMerge     = "toMapMerge"
	opGroupingBy     = "groupingBy"
	opGroupingByWith = "groupingByWith"
	opSum            = "sum"
	opCount          = "count"
	opMin            = "min"
	opMax            = "max"
	opAnyMatch       = "anyMatch"
	opAllMatch       = "allMatch"
	opNoneMatch      = "noneMatch"
	opJoining        = "joining"
)

// evaluate runs one terminal operation: it rejects faulted streams and, when
// the operation must exhaust its input, unbounded ones. The body pulls from a
// fresh iterator chain inside an observability evaluation. On error the
// result is always the zero value of R.
func evaluate[T, R any](
	ctx context.Context,
	s *Stream[T],
	op string,
	exhausting bool,
	body func(ctx context.Context, it Iterator[T]) (R, error),
) (result R, err error) {
	ctx, eval := observability.StartEvaluation(ctx, op, s.bounded)
	defer func() { eval.End(ctx, err) }()

	if s.fault != nil {
		return result, s.fault
	}
	if exhausting && !s.bounded {
		return result, apperrors.UnboundedEvaluation(op)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, apperrors.Canceled(op, ctxErr)
	}

	it := s.create(ctx)
	defer it.Close()
	result, err = body(ctx, it)
	if err != nil {
		// partial accumulations are never returned
		var zero R
		return zero, wrapError(op, err)
	}
	return result, nil
}

// wrapError converts raw context errors into CANCELED and leaves everything
// else untouched.
func wrapError(op string, err error) error {
	if _, ok := apperrors.AsAppError(err); ok {
		return err
	}
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return apperrors.Canceled(op, err)
	}
	return err
}

// drain pulls every value and passes it to fn. fn returning false stops the pull.
func drain[T any](ctx context.Context, it Iterator[T], fn func(T) bool) error {
	for {
		val, ok, err := it.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if !fn(val) {
			return nil
		}
	}
}

// ForEach calls fn for each value in encounter order.
func ForEach[T any](ctx context.Context, s *Stream[T], fn func(T)) error {
	_, err := evaluate(ctx, s, opForEach, true, func(ctx context.Context, it Iterator[T]) (struct{}, error) {
		return struct{}{}, drain(ctx, it, func(v T) bool {
			fn(v)
			return true
		})
	})
	return err
}

// Reduce folds the values left to right starting from identity.
// An empty stream yields identity.
func Reduce[T, R any](ctx context.Context, s *Stream[T], identity R, fn func(R, T) R) (R, error) {
	return evaluate(ctx, s, opReduce, true, func(ctx context.Context, it Iterator[T]) (R, error) {
		acc := identity
		err := drain(ctx, it, func(v T) bool {
			acc = fn(acc, v)
			return true
		})
		return acc, err
	})
}

// FindFirst returns the first value of the stream. Nothing past it is pulled
// from the source. ok is false when the stream is empty.
func FindFirst[T any](ctx context.Context, s *Stream[T]) (T, bool, error) {
	f, err := evaluate(ctx, s, opFindFirst, false, func(ctx context.Context, it Iterator[T]) (optional[T], error) {
		val, ok, err := it.Next(ctx)
		return optional[T]{val: val, ok: ok}, err
	})
	if err != nil || !f.ok {
		var zero T
		return zero, false, err
	}
	return f.val, true, nil
}

// Collect returns all values as a slice. An empty stream yields an empty,
// non-nil slice.
func Collect[T any](ctx context.Context, s *Stream[T]) ([]T, error) {
	return evaluate(ctx, s, opCollect, true, func(ctx context.Context, it Iterator[T]) ([]T, error) {
		out := []T{}
		err := drain(ctx, it, func(v T) bool {
			out = append(out, v)
			return true
		})
		return out, err
	})
}

// CollectSet returns the distinct values as a set.
func CollectSet[T comparable](ctx context.Context, s *Stream[T]) (map[T]struct{}, error) {
	return evaluate(ctx, s, opCollectSet, true, func(ctx context.Context, it Iterator[T]) (map[T]struct{}, error) {
		out := make(map[T]struct{})
		err := drain(ctx, it, func(v T) bool {
			out[v] = struct{}{}
			return true
		})
		return out, err
	})
}

// ToMap builds a map from keyFn and valueFn. Two values mapping to the same
// key fail the evaluation with DUPLICATE_KEY; use ToMapMerge to combine them.
func ToMap[T any, K comparable, V any](ctx context.Context, s *Stream[T], keyFn func(T) K, valueFn func(T) V) (map[K]V, error) {
	return evaluate(ctx, s, opToMap, true, func(ctx context.Context, it Iterator[T]) (map[K]V, error) {
		out := make(map[K]V)
		var dup error
		err := drain(ctx, it, func(v T) bool {
			k := keyFn(v)
			val := valueFn(v)
			if existing, exists := out[k]; exists {
				dup = apperrors.DuplicateKey(k, existing, val)
				return false
			}
			out[k] = val
			return true
		})
		if err == nil && dup != nil {
			return nil, dup
		}
		return out, err
	})
}

// ToMapMerge builds a map from keyFn and valueFn, combining the values of a
// repeated key with merge(existing, incoming).
func ToMapMerge[T any, K comparable, V any](ctx context.Context, s *Stream[T], keyFn func(T) K, valueFn func(T) V, merge func(V, V) V) (map[K]V, error) {
	return evaluate(ctx, s, opToMapMerge, true, func(ctx context.Context, it Iterator[T]) (map[K]V, error) {
		out := make(map[K]V)
		err := drain(ctx, it, func(v T) bool {
			k := keyFn(v)
			val := valueFn(v)
			if existing, exists := out[k]; exists {
				val = merge(existing, val)
			}
			out[k] = val
			return true
		})
		return out, err
	})
}

// GroupingBy groups the values by key. Keys keep the order in which they were
// first seen and each group keeps encounter order.
func GroupingBy[T any, K comparable](ctx context.Context, s *Stream[T], keyFn func(T) K) (*Grouping[K, []T], error) {
	return evaluate(ctx, s, opGroupingBy, true, func(ctx context.Context, it Iterator[T]) (*Grouping[K, []T], error) {
		return group(ctx, it, keyFn)
	})
}

// GroupingByWith groups the values by key and reduces each group with the
// downstream collector.
func GroupingByWith[T any, K comparable, R any](ctx context.Context, s *Stream[T], keyFn func(T) K, downstream Collector[T, R]) (*Grouping[K, R], error) {
	return evaluate(ctx, s, opGroupingByWith, true, func(ctx context.Context, it Iterator[T]) (*Grouping[K, R], error) {
		groups, err := group(ctx, it, keyFn)
		if err != nil {
			return nil, err
		}
		out := newGrouping[K, R]()
		for k, members := range groups.All() {
			r, err := downstream(ctx, FromSlice(members))
			if err != nil {
				return nil, err
			}
			out.put(k, r)
		}
		return out, nil
	})
}

func group[T any, K comparable](ctx context.Context, it Iterator[T], keyFn func(T) K) (*Grouping[K, []T], error) {
	out := newGrouping[K, []T]()
	err := drain(ctx, it, func(v T) bool {
		k := keyFn(v)
		members, _ := out.Get(k)
		out.put(k, append(members, v))
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Sum adds the values. An empty stream sums to zero.
func Sum[T Number](ctx context.Context, s *Stream[T]) (T, error) {
	return evaluate(ctx, s, opSum, true, func(ctx context.Context, it Iterator[T]) (T, error) {
		var total T
		err := drain(ctx, it, func(v T) bool {
			total += v
			return true
		})
		return total, err
	})
}

// Count returns the number of values.
func Count[T any](ctx context.Context, s *Stream[T]) (int, error) {
	return evaluate(ctx, s, opCount, true, func(ctx context.Context, it Iterator[T]) (int, error) {
		n := 0
		err := drain(ctx, it, func(T) bool {
			n++
			return true
		})
		return n, err
	})
}

// Min returns the smallest value. ok is false when the stream is empty.
func Min[T cmp.Ordered](ctx context.Context, s *Stream[T]) (T, bool, error) {
	return extreme(ctx, s, opMin, func(candidate, best T) bool { return candidate < best })
}

// Max returns the largest value. ok is false when the stream is empty.
func Max[T cmp.Ordered](ctx context.Context, s *Stream[T]) (T, bool, error) {
	return extreme(ctx, s, opMax, func(candidate, best T) bool { return candidate > best })
}

func extreme[T any](ctx context.Context, s *Stream[T], op string, better func(candidate, best T) bool) (T, bool, error) {
	f, err := evaluate(ctx, s, op, true, func(ctx context.Context, it Iterator[T]) (optional[T], error) {
		var f optional[T]
		err := drain(ctx, it, func(v T) bool {
			if !f.ok || better(v, f.val) {
				f = optional[T]{val: v, ok: true}
			}
			return true
		})
		return f, err
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return f.val, f.ok, nil
}

// AnyMatch reports whether any value satisfies fn. It stops at the first match.
func AnyMatch[T any](ctx context.Context, s *Stream[T], fn func(T) bool) (bool, error) {
	return match(ctx, s, opAnyMatch, fn)
}

// AllMatch reports whether every value satisfies fn. It stops at the first
// value that does not. An empty stream matches.
func AllMatch[T any](ctx context.Context, s *Stream[T], fn func(T) bool) (bool, error) {
	matched, err := match(ctx, s, opAllMatch, func(v T) bool { return !fn(v) })
	return !matched && err == nil, err
}

// NoneMatch reports whether no value satisfies fn. It stops at the first match.
func NoneMatch[T any](ctx context.Context, s *Stream[T], fn func(T) bool) (bool, error) {
	matched, err := match(ctx, s, opNoneMatch, fn)
	return !matched && err == nil, err
}

// match reports whether some value satisfies fn, stopping at the first one.
func match[T any](ctx context.Context, s *Stream[T], op string, fn func(T) bool) (bool, error) {
	return evaluate(ctx, s, op, false, func(ctx context.Context, it Iterator[T]) (bool, error) {
		matched := false
		err := drain(ctx, it, func(v T) bool {
			matched = fn(v)
			return !matched
		})
		return matched, err
	})
}

// Joining concatenates string values separated by sep.
func Joining(ctx context.Context, s *Stream[string], sep string) (string, error) {
	return evaluate(ctx, s, opJoining, true, func(ctx context.Context, it Iterator[string]) (string, error) {
		var b strings.Builder
		first := true
		err := drain(ctx, it, func(v string) bool {
			if !first {
				b.WriteString(sep)
			}
			first = false
			b.WriteString(v)
			return true
		})
		return b.String(), err
	})
}
