// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

// Sum types for sequence stepping.
//
// Each sum mirrors one return shape of the abstract model:
//
//	Step[S, T, U]     = (S, T) + U   pure producer step
//	Emit[T, U]        = T + U        imperative producer step
//	Progress[S, U]    = S + U        writer outcome
//
// Constructors place the non-inferable type parameter first so that call
// sites name only what the arguments cannot determine, following the
// Left/Right convention of [Either].

// Step represents the result of advancing a pure producer: either an
// advanced state together with the yielded item, or the terminal
// continuation of type U.
type Step[S, T, U any] struct {
	yielded bool
	state   S
	item    T
	tail    U
}

// Yield creates a Step carrying the advanced state and the yielded item.
// The terminal type U is named explicitly: Yield[U](s, item).
func Yield[U, S, T any](s S, item T) Step[S, T, U] {
	return Step[S, T, U]{yielded: true, state: s, item: item}
}

// Done creates a terminal Step carrying the continuation value.
// Done[S, T](tail) infers U from the argument.
func Done[S, T, U any](tail U) Step[S, T, U] {
	return Step[S, T, U]{tail: tail}
}

// IsYield returns true if the step yielded an item.
func (st Step[S, T, U]) IsYield() bool { return st.yielded }

// IsDone returns true if the step reached the terminal continuation.
func (st Step[S, T, U]) IsDone() bool { return !st.yielded }

// GetYield returns the advanced state, the item, and true; or zeros and false.
func (st Step[S, T, U]) GetYield() (S, T, bool) {
	if st.yielded {
		return st.state, st.item, true
	}
	var zs S
	var zt T
	return zs, zt, false
}

// GetDone returns the terminal continuation and true, or zero and false.
func (st Step[S, T, U]) GetDone() (U, bool) {
	if !st.yielded {
		return st.tail, true
	}
	var zero U
	return zero, false
}

// MatchStep pattern matches on the step, calling onYield or onDone.
func MatchStep[S, T, U, R any](st Step[S, T, U], onYield func(S, T) R, onDone func(U) R) R {
	if st.yielded {
		return onYield(st.state, st.item)
	}
	return onDone(st.tail)
}

// Emit represents the result of advancing an imperative producer: either
// the yielded item, or the terminal continuation. The state is advanced
// in place and does not appear in the sum.
type Emit[T, U any] struct {
	yielded bool
	item    T
	tail    U
}

// Item creates an Emit carrying a yielded item: Item[U](item).
func Item[U, T any](item T) Emit[T, U] {
	return Emit[T, U]{yielded: true, item: item}
}

// End creates a terminal Emit carrying the continuation value.
// End[T](tail) infers U from the argument.
func End[T, U any](tail U) Emit[T, U] {
	return Emit[T, U]{tail: tail}
}

// IsItem returns true if an item was yielded.
func (e Emit[T, U]) IsItem() bool { return e.yielded }

// IsEnd returns true if the terminal continuation was reached.
func (e Emit[T, U]) IsEnd() bool { return !e.yielded }

// GetItem returns the yielded item and true, or zero and false.
func (e Emit[T, U]) GetItem() (T, bool) {
	if e.yielded {
		return e.item, true
	}
	var zero T
	return zero, false
}

// GetEnd returns the terminal continuation and true, or zero and false.
func (e Emit[T, U]) GetEnd() (U, bool) {
	if !e.yielded {
		return e.tail, true
	}
	var zero U
	return zero, false
}

// MatchEmit pattern matches on the emit, calling onItem or onEnd.
func MatchEmit[T, U, R any](e Emit[T, U], onItem func(T) R, onEnd func(U) R) R {
	if e.yielded {
		return onItem(e.item)
	}
	return onEnd(e.tail)
}

// Progress represents the outcome of a batch write: either the advanced
// state (the sequence remains open, more items may follow) or the terminal
// continuation (the sequence ended inside the batch).
type Progress[S, U any] struct {
	open  bool
	state S
	tail  U
}

// Open creates a Progress carrying the advanced state: Open[U](s).
func Open[U, S any](s S) Progress[S, U] {
	return Progress[S, U]{open: true, state: s}
}

// Closed creates a terminal Progress carrying the continuation value.
// Closed[S](tail) infers U from the argument.
func Closed[S, U any](tail U) Progress[S, U] {
	return Progress[S, U]{tail: tail}
}

// IsOpen returns true if the sequence remains open.
func (p Progress[S, U]) IsOpen() bool { return p.open }

// IsClosed returns true if the sequence ended.
func (p Progress[S, U]) IsClosed() bool { return !p.open }

// GetOpen returns the advanced state and true, or zero and false.
func (p Progress[S, U]) GetOpen() (S, bool) {
	if p.open {
		return p.state, true
	}
	var zero S
	return zero, false
}

// GetClosed returns the terminal continuation and true, or zero and false.
func (p Progress[S, U]) GetClosed() (U, bool) {
	if !p.open {
		return p.tail, true
	}
	var zero U
	return zero, false
}

// MatchProgress pattern matches on the progress, calling onOpen or onClosed.
func MatchProgress[S, U, R any](p Progress[S, U], onOpen func(S) R, onClosed func(U) R) R {
	if p.open {
		return onOpen(p.state)
	}
	return onClosed(p.tail)
}

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Never is the uninhabited type. No implementation of the unexported
// method exists, so no non-nil Never value can be constructed; it encodes
// the empty alternative 0 of the sequence model. A producer with terminal
// type Never repeats forever; an Eff variant with error type Never is
// infallible. Infallibility is an instantiation, not a special case.
type Never interface{ never() }

// Absurd eliminates a Never value. Since no Never value can be observed,
// reaching Absurd at runtime is a contract violation and panics.
func Absurd[A any](Never) A {
	panic("seq: absurd: Never value observed")
}
