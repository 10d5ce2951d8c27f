// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import "context"

// Consumer family: accepts the items of a sequence, left to right.
// The exact dual of the Producer family, with one asymmetry: Close keeps
// the producer's temporal direction. The naive arrow reversal would give
// close the shape U -> S, which traverses the sequence right to left;
// the terminal operation is reversed a second time so that states still
// flow left to right (see the package documentation).

// Consumer is the pure formulation. Push consumes the state together
// with one item and returns the advanced state; Close ends the sequence
// and produces the terminal continuation.
//
// Push transfers ownership of the item into the consumer, which is then
// responsible for its eventual release.
type Consumer[S, T, U any] interface {
	Push(s S, item T) S
	Close(s S) U
}

// MutConsumer is the imperative formulation; the state is advanced in
// place.
type MutConsumer[S, T, U any] interface {
	Push(s *S, item T)
	Close(s *S) U
}

// BufConsumer is a consumer with internal buffering. Flush forces every
// buffered item through to the underlying sink. Close implicitly
// flushes before producing the terminal continuation, so no pushed item
// is ever lost to an unflushed buffer.
//
// Flush = identity is a lawful default for unbuffered consumers; see
// [UnbufferedConsumer].
type BufConsumer[S, T, U any] interface {
	Consumer[S, T, U]
	Flush(s S) S
}

// MutBufConsumer is the imperative buffered formulation.
type MutBufConsumer[S, T, U any] interface {
	MutConsumer[S, T, U]
	Flush(s *S)
}

// EffConsumer is the fallible, asynchronous formulation. Explicit errors
// on Push cannot be simulated by folding failure into the continuation
// type U, since Push does not return U; the error effect genuinely adds
// expressiveness here, and wraps Flush and Close as well for uniformity.
type EffConsumer[S, T, U, E any] interface {
	Push(ctx context.Context, s S, item T) Either[E, S]
	Flush(ctx context.Context, s S) Either[E, S]
	Close(ctx context.Context, s S) Either[E, U]
}
