package stream

import "context"

// Collector reduces a stream to a single result. Collectors are the
// downstream argument of GroupingByWith and can be applied directly with
// CollectWith.
type Collector[T, R any] func(ctx context.Context, s *Stream[T]) (R, error)

// CollectWith applies c to s.
func CollectWith[T, R any](ctx context.Context, s *Stream[T], c Collector[T, R]) (R, error) {
	return c(ctx, s)
}

// ToList collects values into a slice.
func ToList[T any]() Collector[T, []T] {
	return Collect[T]
}

// ToSet collects values into a set.
func ToSet[T comparable]() Collector[T, map[T]struct{}] {
	return CollectSet[T]
}

// Counting counts values.
func Counting[T any]() Collector[T, int] {
	return Count[T]
}

// Summing adds the numbers fn extracts from each value.
func Summing[T any, N Number](fn func(T) N) Collector[T, N] {
	return func(ctx context.Context, s *Stream[T]) (N, error) {
		return Sum(ctx, Map(s, fn))
	}
}

// Mapping transforms each value with fn before passing it to downstream.
//
//	stream.GroupingByWith(ctx, people,
//	    func(p Person) string { return p.Name },
//	    stream.Mapping(func(p Person) int { return p.Age }, stream.ToList[int]()))
func Mapping[T, U, R any](fn func(T) U, downstream Collector[U, R]) Collector[T, R] {
	return func(ctx context.Context, s *Stream[T]) (R, error) {
		return downstream(ctx, Map(s, fn))
	}
}

// Reducing folds values left to right starting from identity.
func Reducing[T any](identity T, fn func(T, T) T) Collector[T, T] {
	return func(ctx context.Context, s *Stream[T]) (T, error) {
		return Reduce(ctx, s, identity, fn)
	}
}

// JoiningWith concatenates string values separated by sep.
func JoiningWith(sep string) Collector[string, string] {
	return func(ctx context.Context, s *Stream[string]) (string, error) {
		return Joining(ctx, s, sep)
	}
}
