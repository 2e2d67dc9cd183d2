package scenarios

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	apperrors "github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/logger"
)

// Options parameterize a walkthrough run.
type Options struct {
	// Seed and Count are the k and n of Compute.
	Seed  int
	Count int
	// Trace logs every element of the traced scenario at debug level.
	Trace bool
	// Only restricts the run to the named scenarios. Empty runs them all.
	Only []string
}

// Result is the outcome of one scenario.
type Result struct {
	Name     string
	Value    any
	Duration time.Duration
}

type scenario struct {
	name string
	run  func(ctx context.Context) (any, error)
}

func value[T any](fn func(context.Context) (T, error)) func(context.Context) (any, error) {
	return func(ctx context.Context) (any, error) { return fn(ctx) }
}

func walkthrough(opts Options, log *logger.Logger) []scenario {
	traceLog := logger.Nop()
	if opts.Trace {
		traceLog = log
	}
	return []scenario{
		{"neighbours", value(Neighbours)},
		{"even_sum_from_20", value(EvenSumFrom20)},
		{"doubled_even_sum", value(DoubledEvenSum)},
		{"doubled_even_sum_from_20", value(DoubledEvenSumFrom20)},
		{"doubled_sum", value(DoubledSum)},
		{"lowercase_g_symbols", func(ctx context.Context) (any, error) { return LowercaseSymbols(ctx, "g") }},
		{"double_of_even", value(DoubleOfEven)},
		{"double_of_even_set", value(DoubleOfEvenSet)},
		{"people_by_name_age", value(PeopleByNameAge)},
		{"people_by_name", value(PeopleByName)},
		{"ages_by_name", value(AgesByName)},
		{"first_double_of_even_gt3_loop", func(context.Context) (any, error) {
			return FirstDoubleOfEvenGT3Loop(Numbers()), nil
		}},
		{"first_double_of_even_gt3", func(ctx context.Context) (any, error) {
			v, ok, err := FirstDoubleOfEvenGT3(ctx, NumbersOutOfOrder(), traceLog)
			if err != nil || !ok {
				return nil, err
			}
			return v, nil
		}},
		{"even_duplicates", value(EvenDuplicates)},
		{"even_duplicates_sorted", value(EvenDuplicatesSorted)},
		{"even_duplicates_sorted_distinct", value(EvenDuplicatesSortedDistinct)},
		{fmt.Sprintf("compute_%d_%d", opts.Seed, opts.Count), func(ctx context.Context) (any, error) {
			return Compute(ctx, opts.Seed, opts.Count)
		}},
	}
}

// Names lists the scenarios of a walkthrough in run order.
func Names(opts Options) []string {
	all := walkthrough(opts, logger.Nop())
	names := make([]string, len(all))
	for i, sc := range all {
		names[i] = sc.name
	}
	return names
}

// Run evaluates the scenarios in walkthrough order and logs each result.
// It stops at the first failing scenario. Names in opts.Only that match no
// scenario are an INVALID_ARGUMENT error.
func Run(ctx context.Context, opts Options, log *logger.Logger) ([]Result, error) {
	if log == nil {
		log = logger.Nop()
	}
	selected, err := selectScenarios(walkthrough(opts, log), opts.Only)
	if err != nil {
		return nil, err
	}
	var results []Result
	for _, sc := range selected {
		start := time.Now()
		v, err := sc.run(ctx)
		elapsed := time.Since(start)
		if err != nil {
			log.Error("scenario failed", logger.Fields(
				logger.FieldScenario, sc.name,
				logger.FieldError, err.Error(),
			))
			return results, fmt.Errorf("scenario %s: %w", sc.name, err)
		}
		log.Info("scenario", logger.Fields(
			logger.FieldScenario, sc.name,
			logger.FieldResult, fmt.Sprint(v),
			logger.FieldDuration, elapsed.Milliseconds(),
		))
		results = append(results, Result{Name: sc.name, Value: v, Duration: elapsed})
	}
	return results, nil
}

func selectScenarios(all []scenario, only []string) ([]scenario, error) {
	if len(only) == 0 {
		return all, nil
	}
	wanted := make(map[string]bool, len(only))
	for _, name := range only {
		wanted[name] = true
	}
	var selected []scenario
	for _, sc := range all {
		if wanted[sc.name] {
			selected = append(selected, sc)
			delete(wanted, sc.name)
		}
	}
	if len(wanted) > 0 {
		unknown := make([]string, 0, len(wanted))
		for name := range wanted {
			unknown = append(unknown, name)
		}
		slices.Sort(unknown)
		return nil, apperrors.InvalidArgument("scenario", "unknown "+strings.Join(unknown, ", ")).
			WithDetail("scenarios", unknown)
	}
	return selected, nil
}
