// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import "context"

// Producer family: yields the items of a sequence, left to right, lazily.
//
// S is the opaque progress state, T the item type, U the terminal
// continuation produced when the repeating part of the sequence ends.
// U may itself hold another producer's state, composing heterogeneous
// sequence segments (see [ChainProducer]).

// Producer is the pure formulation. Next consumes the state and returns
// either an advanced state with the next item, or the terminal
// continuation.
//
// A state value is single-use: once passed to Next, the caller must
// continue from the returned state. Re-advancing an old state is
// meaningful only for producers whose states copy independently, and is
// the basis for snapshot retry (see package documentation).
type Producer[S, T, U any] interface {
	Next(s S) Step[S, T, U]
}

// MutProducer is the imperative formulation. Next advances the state in
// place and returns the item or the terminal continuation.
//
// Calling Next again after it returned the terminal is a caller error;
// the type system does not prevent it, and the result is unspecified.
type MutProducer[S, T, U any] interface {
	Next(s *S) Emit[T, U]
}

// BufProducer is a producer with internal buffering. Force bypasses the
// buffering policy: buffered items drain first, and at most one pull
// reaches the underlying source. No buffered item is silently lost when
// the source stalls.
//
// Force = Next is a lawful default for unbuffered producers; see
// [UnbufferedProducer].
type BufProducer[S, T, U any] interface {
	Producer[S, T, U]
	Force(s S) Step[S, T, U]
}

// MutBufProducer is the imperative buffered formulation.
type MutBufProducer[S, T, U any] interface {
	MutProducer[S, T, U]
	Force(s *S) Emit[T, U]
}

// EffProducer is the fallible, asynchronous formulation. The call itself
// is the asynchronous effect and may suspend on ctx; the fallible result
// sits inside it as Either. The effect order is therefore asynchronous
// outside, fallible inside — a failing source surfaces as a resolved
// Left, never as an unresolved computation.
//
// The error effect wraps every operation of the family uniformly.
// Instantiate E with [Never] for the infallible form.
type EffProducer[S, T, U, E any] interface {
	Next(ctx context.Context, s S) Either[E, Step[S, T, U]]
	Force(ctx context.Context, s S) Either[E, Step[S, T, U]]
}

// ActiveProducer is the active alternative to [Producer]: the caller,
// not the producer, decides when repetition ends. Next always yields;
// Finish ends the repetition and produces the terminal continuation.
//
// Equivalent in expressive power to the passive form, with the control
// locus moved to the caller. The passive form is the package default.
type ActiveProducer[S, T, U any] interface {
	Next(s S) (S, T)
	Finish(s S) U
}

// ProducerFunc adapts a function to the Producer interface.
type ProducerFunc[S, T, U any] func(S) Step[S, T, U]

// Next implements Producer.
func (f ProducerFunc[S, T, U]) Next(s S) Step[S, T, U] { return f(s) }

// MutProducerFunc adapts a function to the MutProducer interface.
type MutProducerFunc[S, T, U any] func(*S) Emit[T, U]

// Next implements MutProducer.
func (f MutProducerFunc[S, T, U]) Next(s *S) Emit[T, U] { return f(s) }

// EffProducerFunc adapts a step function to the EffProducer interface,
// with Force = Next. This is the plainest way to expose an asynchronous,
// fallible source as a producer.
type EffProducerFunc[S, T, U, E any] func(ctx context.Context, s S) Either[E, Step[S, T, U]]

// Next implements EffProducer.
func (f EffProducerFunc[S, T, U, E]) Next(ctx context.Context, s S) Either[E, Step[S, T, U]] {
	return f(ctx, s)
}

// Force implements EffProducer by delegating to the step function.
func (f EffProducerFunc[S, T, U, E]) Force(ctx context.Context, s S) Either[E, Step[S, T, U]] {
	return f(ctx, s)
}
