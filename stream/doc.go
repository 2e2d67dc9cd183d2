// Package stream provides lazy, pull-based sequences with functional operators.
//
// A Stream describes a computation; nothing happens until a terminal
// operation pulls values through it. Each terminal builds a fresh iterator
// chain and evaluates it once, so the same Stream can be evaluated any number
// of times and never caches results. Elements travel through the whole chain
// one at a time: element 1 passes Map then Filter before element 2 enters
// Map.
//
// # Sources
//
//   - FromSlice, Of, Empty, Range: finite sources
//   - Iterate, Generate: infinite sources, bounded later with Limit
//   - FromFunc, FromSeq: adapt an existing iterator factory or iter.Seq
//   - Concat: join streams sequentially
//
// # Intermediate operations
//
// Stateless (one element in, zero or more out, no buffering):
//
//   - Map, Filter, FlatMap, FlatMapSlice
//   - Peek, Trace, Instrument: side effects without altering values
//
// Stateful:
//
//   - Distinct, DistinctBy: drop elements already emitted in this evaluation
//   - Sorted, SortedFunc: buffer the whole upstream, then emit in order
//   - Limit, Skip, Chunk
//
// # Terminal operations
//
// ForEach, Reduce, FindFirst, Collect, CollectSet, ToMap, ToMapMerge,
// GroupingBy, GroupingByWith, Sum, Count, Min, Max, AnyMatch, AllMatch,
// NoneMatch, Joining, CollectWith.
//
// Terminals that must consume every element fail with UNBOUNDED_EVALUATION
// when the stream was built from an infinite source and never bounded with
// Limit. FindFirst and the Match terminals short-circuit and accept infinite
// streams.
//
// # Usage
//
//	evens := stream.Filter(stream.Range(1, 11), func(n int) bool { return n%2 == 0 })
//	total, err := stream.Reduce(ctx, evens, 20, func(acc, n int) int { return acc + n })
//	// total == 50
//
//	first, ok, err := stream.FindFirst(ctx,
//	    stream.Filter(stream.Iterate(1, func(n int) int { return n + 1 }),
//	        func(n int) bool { return n > 3 && n%2 == 0 }))
//	// first == 4
package stream
