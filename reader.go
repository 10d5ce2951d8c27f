// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import "context"

// Reader family: the batch-oriented counterpart of Consumer. Read
// accepts many items in one call through a caller-owned slice instead of
// taking ownership of items one by one.
//
// The src slice is a read-only borrow: the reader copies what it
// consumes and retains no reference to the backing array. The caller may
// reuse or free src immediately after the call returns.

// ReadResult pairs the advanced reader state with the number of items
// consumed from the front of src.
type ReadResult[S any] struct {
	State S
	N     int
}

// Reader is the pure formulation. Read consumes a prefix of src into
// the sequence and returns the advanced state and the count consumed;
// Close ends the sequence and produces the terminal continuation.
//
// A count short of len(src) means the reader stalled; the caller re-offers
// the remainder later.
type Reader[S, T, U any] interface {
	Read(s S, src []T) (S, int)
	Close(s S) U
}

// MutReader is the imperative formulation.
type MutReader[S, T, U any] interface {
	Read(s *S, src []T) int
	Close(s *S) U
}

// BufReader is a reader with internal staging. Flush forces staged items
// through to the underlying sink; Close implicitly flushes.
type BufReader[S, T, U any] interface {
	Reader[S, T, U]
	Flush(s S) S
}

// MutBufReader is the imperative buffered formulation.
type MutBufReader[S, T, U any] interface {
	MutReader[S, T, U]
	Flush(s *S)
}

// EffReader is the fallible, asynchronous formulation. Every operation
// is wrapped uniformly; instantiate E with [Never] for the infallible
// form.
type EffReader[S, T, U, E any] interface {
	Read(ctx context.Context, s S, src []T) Either[E, ReadResult[S]]
	Flush(ctx context.Context, s S) Either[E, S]
	Close(ctx context.Context, s S) Either[E, U]
}
