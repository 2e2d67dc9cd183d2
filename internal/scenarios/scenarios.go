// Package scenarios holds the stream walkthrough run by cmd/streamdemo. Every
// scenario is a pure function over the sample data returning its result.
package scenarios

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observability"
	"github.com/kbukum/seqkit/stream"
)

// Numbers returns 1 through 10.
func Numbers() []int {
	return []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
}

// NumbersOutOfOrder returns 1 through 20 with 4 and 5 swapped.
func NumbersOutOfOrder() []int {
	return []int{1, 2, 3, 5, 4, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20}
}

// Duplicates returns 1 through 5 twice.
func Duplicates() []int {
	return []int{1, 2, 3, 4, 5, 1, 2, 3, 4, 5}
}

// Symbols returns a few ticker symbols.
func Symbols() []string {
	return []string{"GOOG", "AAPL", "MSFT", "INTC"}
}

func isEven(n int) bool { return n%2 == 0 }

func isGT3(n int) bool { return n > 3 }

func doubleIt(n int) int { return n * 2 }

func add(a, b int) int { return a + b }

// Neighbours replaces every number with the pair (n-1, n+1).
func Neighbours(ctx context.Context) ([]int, error) {
	return stream.Collect(ctx, stream.FlatMap(stream.FromSlice(Numbers()), func(n int) *stream.Stream[int] {
		return stream.Of(n-1, n+1)
	}))
}

// EvenSumFrom20 folds the even numbers into 20.
func EvenSumFrom20(ctx context.Context) (int, error) {
	return stream.Reduce(ctx, stream.Filter(stream.FromSlice(Numbers()), isEven), 20, add)
}

// DoubledEvenSum sums the doubles of the even numbers as floats.
func DoubledEvenSum(ctx context.Context) (float64, error) {
	evens := stream.Filter(stream.FromSlice(Numbers()), isEven)
	return stream.Sum(ctx, stream.Map(evens, func(n int) float64 { return float64(n) * 2.0 }))
}

// DoubledEvenSumFrom20 folds the doubles of the even numbers into 20.
func DoubledEvenSumFrom20(ctx context.Context) (int, error) {
	evens := stream.Filter(stream.FromSlice(Numbers()), isEven)
	return stream.Reduce(ctx, stream.Map(evens, doubleIt), 20, add)
}

// DoubledSum folds the doubles of all numbers into 0.0.
func DoubledSum(ctx context.Context) (float64, error) {
	doubled := stream.Map(stream.FromSlice(Numbers()), func(n int) float64 { return float64(n) * 2.0 })
	return stream.Reduce(ctx, doubled, 0.0, func(a, b float64) float64 { return a + b })
}

// LowercaseSymbols lowercases the symbols and keeps those starting with prefix.
func LowercaseSymbols(ctx context.Context, prefix string) ([]string, error) {
	lower := stream.Map(stream.FromSlice(Symbols()), strings.ToLower)
	return stream.Collect(ctx, stream.Filter(lower, func(s string) bool { return strings.HasPrefix(s, prefix) }))
}

func doubledEvens() *stream.Stream[int] {
	return stream.Map(stream.Filter(stream.FromSlice(Duplicates()), isEven), doubleIt)
}

// DoubleOfEven collects the doubles of the even duplicates, repeats included.
func DoubleOfEven(ctx context.Context) ([]int, error) {
	return stream.Collect(ctx, doubledEvens())
}

// DoubleOfEvenSet collects the distinct doubles of the even duplicates.
func DoubleOfEvenSet(ctx context.Context) (map[int]struct{}, error) {
	return stream.CollectSet(ctx, doubledEvens())
}

// PeopleByNameAge indexes the people by "name-age".
func PeopleByNameAge(ctx context.Context) (map[string]Person, error) {
	return stream.ToMap(ctx, stream.FromSlice(People()),
		func(p Person) string { return p.Name + "-" + strconv.Itoa(p.Age) },
		func(p Person) Person { return p })
}

// PeopleByName groups the people by name.
func PeopleByName(ctx context.Context) (*stream.Grouping[string, []Person], error) {
	return stream.GroupingBy(ctx, stream.FromSlice(People()), func(p Person) string { return p.Name })
}

// AgesByName groups the ages of the people by name.
func AgesByName(ctx context.Context) (*stream.Grouping[string, []int], error) {
	return stream.GroupingByWith(ctx, stream.FromSlice(People()),
		func(p Person) string { return p.Name },
		stream.Mapping(func(p Person) int { return p.Age }, stream.ToList[int]()))
}

// FirstDoubleOfEvenGT3Loop finds the double of the first even number greater
// than 3 with a plain loop. It returns 0 when there is none.
func FirstDoubleOfEvenGT3Loop(numbers []int) int {
	for _, n := range numbers {
		if isGT3(n) && isEven(n) {
			return doubleIt(n)
		}
	}
	return 0
}

// FirstDoubleOfEvenGT3 finds the double of the first even number greater than
// 3. Each stage is traced through log, so the debug output shows every
// element passing all stages before the next one is pulled, and nothing being
// pulled once the result is found.
func FirstDoubleOfEvenGT3(ctx context.Context, numbers []int, log *logger.Logger) (int, bool, error) {
	s := stream.Trace(stream.FromSlice(numbers), log, "source")
	s = stream.Trace(stream.Filter(s, isGT3), log, "isGT3")
	s = stream.Trace(stream.Filter(s, isEven), log, "isEven")
	s = stream.Trace(stream.Map(s, doubleIt), log, "doubleIt")
	return stream.FindFirst(ctx, s)
}

func evenDuplicates() *stream.Stream[int] {
	return stream.Filter(stream.FromSlice(Duplicates()), isEven)
}

// EvenDuplicates keeps the even duplicates in encounter order.
func EvenDuplicates(ctx context.Context) ([]int, error) {
	return stream.Collect(ctx, evenDuplicates())
}

// EvenDuplicatesSorted sorts the even duplicates.
func EvenDuplicatesSorted(ctx context.Context) ([]int, error) {
	return stream.Collect(ctx, stream.Sorted(evenDuplicates()))
}

// EvenDuplicatesSortedDistinct sorts the even duplicates and drops repeats.
func EvenDuplicatesSortedDistinct(ctx context.Context) ([]int, error) {
	return stream.Collect(ctx, stream.Distinct(stream.Sorted(evenDuplicates())))
}

func qualifies(n int) bool {
	return isEven(n) && math.Sqrt(float64(n)) > 20
}

// Compute returns the total of the doubles of the first n even numbers
// starting from k whose square root exceeds 20. When ctx carries stream
// metrics, the numbers pulled and the numbers kept are counted.
func Compute(ctx context.Context, k, n int) (int, error) {
	metrics := observability.MetricsFromContext(ctx)
	s := stream.Instrument(stream.Iterate(k, func(e int) int { return e + 1 }), metrics, "compute.source")
	s = stream.Instrument(stream.Filter(s, qualifies), metrics, "compute.qualified")
	return stream.Sum(ctx, stream.Limit(stream.Map(s, doubleIt), n))
}

// ComputeLoop is Compute written as a loop.
func ComputeLoop(k, n int) int {
	result := 0
	for index, count := k, 0; count < n; index++ {
		if qualifies(index) {
			result += doubleIt(index)
			count++
		}
	}
	return result
}
