package stream

import (
	"context"
	"fmt"

	apperrors "github.com/kbukum/seqkit/errors"
)

// Chunk collects consecutive values into slices of up to size elements.
// The final chunk holds whatever remains and may be shorter.
func Chunk[T any](s *Stream[T], size int) *Stream[[]T] {
	out := derive(s, func(ctx context.Context) Iterator[[]T] {
		return &chunkIter[T]{source: s.create(ctx), size: size}
	})
	if size <= 0 {
		return withFault(out, apperrors.InvalidArgument("chunk size", fmt.Sprintf("must be positive, got %d", size)))
	}
	return out
}

type chunkIter[T any] struct {
	source Iterator[T]
	size   int
	done   bool
}

func (it *chunkIter[T]) Next(ctx context.Context) (result []T, ok bool, err error) {
	if it.done {
		return nil, false, nil
	}

	chunk := make([]T, 0, it.size)
	for len(chunk) < it.size {
		val, ok, err := it.source.Next(ctx)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			it.done = true
			break
		}
		chunk = append(chunk, val)
	}
	if len(chunk) == 0 {
		return nil, false, nil
	}
	return chunk, true, nil
}

func (it *chunkIter[T]) Close() error { return it.source.Close() }
