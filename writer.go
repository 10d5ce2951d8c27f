// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import "context"

// Writer family: the batch-oriented counterpart of Producer. Write
// delivers many items in one call through a caller-owned slice instead
// of yielding them one by one.
//
// The dst slice is a write-only borrow: the writer fills a prefix and
// retains no reference to the backing array after returning.

// WriteResult pairs the writer outcome — the advanced state, or the
// terminal continuation if the sequence ended inside the batch — with
// the number of items written to the front of dst.
type WriteResult[S, U any] struct {
	Tail Progress[S, U]
	N    int
}

// Writer is the pure formulation. Write fills a prefix of dst with as
// many items as are available and returns the outcome and the count
// written. A count short of len(dst) with an open outcome means the
// writer stalled; the caller calls again later.
type Writer[S, T, U any] interface {
	Write(s S, dst []T) (Progress[S, U], int)
}

// MutWriter is the imperative formulation. done reports that the
// sequence ended inside this batch, with tail the terminal continuation.
type MutWriter[S, T, U any] interface {
	Write(s *S, dst []T) (n int, tail U, done bool)
}

// BufWriter is a writer with internal buffering. Force flushes any
// internally buffered items into dst before pulling from the underlying
// source, guaranteeing no buffered item is silently withheld when the
// source stalls.
type BufWriter[S, T, U any] interface {
	Writer[S, T, U]
	Force(s S, dst []T) (Progress[S, U], int)
}

// MutBufWriter is the imperative buffered formulation.
type MutBufWriter[S, T, U any] interface {
	MutWriter[S, T, U]
	Force(s *S, dst []T) (n int, tail U, done bool)
}

// EffWriter is the fallible, asynchronous formulation. Every operation
// is wrapped uniformly; instantiate E with [Never] for the infallible
// form.
type EffWriter[S, T, U, E any] interface {
	Write(ctx context.Context, s S, dst []T) Either[E, WriteResult[S, U]]
	Force(ctx context.Context, s S, dst []T) Either[E, WriteResult[S, U]]
}
