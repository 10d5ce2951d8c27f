// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import (
	"sync/atomic"
)

// Owned wraps a state with one-shot enforcement. The state can be taken
// at most once; subsequent attempts panic (Take) or return false
// (TryTake).
//
// The pure formulation's single-use contract is a convention the type
// system does not check. Owned checks it dynamically, recovering the
// move discipline of ownership-typed languages: a consumed state cannot
// be advanced twice, and a terminated producer handle cannot be reused.
type Owned[S any] struct {
	used  atomic.Uintptr
	state S
}

// Own creates a one-shot handle holding the given state.
func Own[S any](s S) *Owned[S] {
	return &Owned[S]{state: s}
}

// Take moves the state out of the handle.
// Panics if the state has already been taken.
func (o *Owned[S]) Take() S {
	if o.used.Add(1) != 1 {
		panic("seq: owned state taken twice")
	}
	s := o.state
	var zero S
	o.state = zero
	return s
}

// TryTake attempts to move the state out of the handle.
// Returns (state, true) on success, or (zero, false) if already taken.
func (o *Owned[S]) TryTake() (S, bool) {
	if o.used.Add(1) != 1 {
		var zero S
		return zero, false
	}
	s := o.state
	var zero S
	o.state = zero
	return s, true
}

// Discard marks the handle as used without taking the state.
func (o *Owned[S]) Discard() {
	o.used.Store(1)
	var zero S
	o.state = zero
}

// linearProducer threads a pure producer's states through one-shot
// handles, so every advance consumes its handle.
type linearProducer[S, T, U any] struct{ inner Producer[S, T, U] }

// Next implements Producer over *Owned[S] states. The handle is taken
// before the inner producer runs; advancing an already-consumed handle
// panics rather than silently re-reading the sequence.
func (p linearProducer[S, T, U]) Next(h *Owned[S]) Step[*Owned[S], T, U] {
	st := p.inner.Next(h.Take())
	if ns, item, ok := st.GetYield(); ok {
		return Yield[U](Own(ns), item)
	}
	tail, _ := st.GetDone()
	return Done[*Owned[S], T](tail)
}

// LinearProducer wraps a pure producer so each state handle is
// single-use. Begin with Own(initial).
func LinearProducer[S, T, U any](p Producer[S, T, U]) linearProducer[S, T, U] {
	return linearProducer[S, T, U]{inner: p}
}
