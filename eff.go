// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import "context"

// Effect derivation. Lift wraps a total, synchronous variant into the
// fallible, asynchronous one: every operation returns Right and never
// suspends, regardless of ctx. The wrap is applied to the whole family
// at once — the Eff interfaces take the buffered shape, so a plain
// variant is lifted via its Unbuffered wrapper:
//
//	LiftProducer[E](UnbufferedProducer(p))
//
// The converse direction does not exist: an effectful computation cannot
// be made total.

// liftProducer wraps a buffered producer into the Eff formulation.
type liftProducer[S, T, U, E any] struct{ inner BufProducer[S, T, U] }

// Next implements EffProducer; always Right.
func (p liftProducer[S, T, U, E]) Next(_ context.Context, s S) Either[E, Step[S, T, U]] {
	return Right[E](p.inner.Next(s))
}

// Force implements EffProducer; always Right.
func (p liftProducer[S, T, U, E]) Force(_ context.Context, s S) Either[E, Step[S, T, U]] {
	return Right[E](p.inner.Force(s))
}

// LiftProducer wraps a buffered producer as an EffProducer that never
// fails. E is typically [Never] but may be any error type the caller's
// pipeline carries.
func LiftProducer[E, S, T, U any](p BufProducer[S, T, U]) liftProducer[S, T, U, E] {
	return liftProducer[S, T, U, E]{inner: p}
}

// liftConsumer wraps a buffered consumer into the Eff formulation.
type liftConsumer[S, T, U, E any] struct{ inner BufConsumer[S, T, U] }

// Push implements EffConsumer; always Right.
func (c liftConsumer[S, T, U, E]) Push(_ context.Context, s S, item T) Either[E, S] {
	return Right[E](c.inner.Push(s, item))
}

// Flush implements EffConsumer; always Right.
func (c liftConsumer[S, T, U, E]) Flush(_ context.Context, s S) Either[E, S] {
	return Right[E](c.inner.Flush(s))
}

// Close implements EffConsumer; always Right.
func (c liftConsumer[S, T, U, E]) Close(_ context.Context, s S) Either[E, U] {
	return Right[E](c.inner.Close(s))
}

// LiftConsumer wraps a buffered consumer as an EffConsumer that never
// fails.
func LiftConsumer[E, S, T, U any](c BufConsumer[S, T, U]) liftConsumer[S, T, U, E] {
	return liftConsumer[S, T, U, E]{inner: c}
}

// liftReader wraps a buffered reader into the Eff formulation.
type liftReader[S, T, U, E any] struct{ inner BufReader[S, T, U] }

// Read implements EffReader; always Right.
func (r liftReader[S, T, U, E]) Read(_ context.Context, s S, src []T) Either[E, ReadResult[S]] {
	ns, n := r.inner.Read(s, src)
	return Right[E](ReadResult[S]{State: ns, N: n})
}

// Flush implements EffReader; always Right.
func (r liftReader[S, T, U, E]) Flush(_ context.Context, s S) Either[E, S] {
	return Right[E](r.inner.Flush(s))
}

// Close implements EffReader; always Right.
func (r liftReader[S, T, U, E]) Close(_ context.Context, s S) Either[E, U] {
	return Right[E](r.inner.Close(s))
}

// LiftReader wraps a buffered reader as an EffReader that never fails.
func LiftReader[E, S, T, U any](r BufReader[S, T, U]) liftReader[S, T, U, E] {
	return liftReader[S, T, U, E]{inner: r}
}

// liftWriter wraps a buffered writer into the Eff formulation.
type liftWriter[S, T, U, E any] struct{ inner BufWriter[S, T, U] }

// Write implements EffWriter; always Right.
func (w liftWriter[S, T, U, E]) Write(_ context.Context, s S, dst []T) Either[E, WriteResult[S, U]] {
	tail, n := w.inner.Write(s, dst)
	return Right[E](WriteResult[S, U]{Tail: tail, N: n})
}

// Force implements EffWriter; always Right.
func (w liftWriter[S, T, U, E]) Force(_ context.Context, s S, dst []T) Either[E, WriteResult[S, U]] {
	tail, n := w.inner.Force(s, dst)
	return Right[E](WriteResult[S, U]{Tail: tail, N: n})
}

// LiftWriter wraps a buffered writer as an EffWriter that never fails.
func LiftWriter[E, S, T, U any](w BufWriter[S, T, U]) liftWriter[S, T, U, E] {
	return liftWriter[S, T, U, E]{inner: w}
}
