package stream

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observability"
)

// Trace logs every value passing the stage at debug level, tagged with the
// stage name and the run id of the enclosing evaluation. Lines from one
// evaluation share a run id, so the per-element order across stages can be
// read back from the log.
func Trace[T any](s *Stream[T], log *logger.Logger, stage string) *Stream[T] {
	if log == nil {
		return s
	}
	return peek(s, func(ctx context.Context, v T) {
		if !log.Enabled(zerolog.DebugLevel) {
			return
		}
		log.Debug("element", logger.Fields(
			logger.FieldStage, stage,
			logger.FieldElement, v,
			logger.FieldRunID, observability.RunIDFromContext(ctx),
		))
	})
}

// Instrument counts every value passing the stage on the stream.elements
// counter.
func Instrument[T any](s *Stream[T], metrics *observability.StreamMetrics, stage string) *Stream[T] {
	if metrics == nil {
		return s
	}
	return peek(s, func(ctx context.Context, _ T) {
		metrics.RecordElement(ctx, stage)
	})
}
