// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import "iter"

// Bridges to Go's native generators. A range-over-func sequence is the
// closure world; the state-based producer is the defunctionalized world.
// The bridges convert in both directions while keeping the state-based
// contract available for composition and testing.

// Values returns the items of a pure producer as a range-over-func
// sequence starting from s. The terminal continuation is discarded; use
// the producer directly when the terminal matters.
func Values[S, T, U any](p Producer[S, T, U], s S) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			st := p.Next(s)
			ns, item, ok := st.GetYield()
			if !ok {
				return
			}
			if !yield(item) {
				return
			}
			s = ns
		}
	}
}

// PullState is the state of a producer backed by iter.Pull. It holds
// live pull handles, so it does not copy independently: PullState is for
// the imperative formulation only.
type PullState[T any] struct {
	next func() (T, bool)
	stop func()
}

// Pulled starts pulling from a range-over-func sequence and returns the
// resulting producer state.
func Pulled[T any](s iter.Seq[T]) PullState[T] {
	next, stop := iter.Pull(s)
	return PullState[T]{next: next, stop: stop}
}

// Stop releases the underlying pull iterator early. Advancing the state
// afterwards reports the end of the sequence.
func (s *PullState[T]) Stop() {
	s.stop()
}

// pullProducer drives a PullState.
type pullProducer[T any] struct{}

// Next implements MutProducer. The pull iterator is stopped when the
// sequence ends; the terminal continuation is unit.
func (pullProducer[T]) Next(s *PullState[T]) Emit[T, struct{}] {
	item, ok := s.next()
	if !ok {
		s.stop()
		return End[T](struct{}{})
	}
	return Item[struct{}](item)
}

// PullProducer creates an imperative producer over [PullState] states,
// adapting any range-over-func sequence to the state-based contract.
func PullProducer[T any]() pullProducer[T] { return pullProducer[T]{} }

// PushAll feeds every item of a range-over-func sequence into a
// consumer, returning the advanced state. The consumer is not closed.
func PushAll[S, T, U any](c Consumer[S, T, U], s S, items iter.Seq[T]) S {
	for item := range items {
		s = c.Push(s, item)
	}
	return s
}
