// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

// Buffering derivation. The buffered interfaces subsume the unbuffered
// ones because trivial defaults exist: Flush = identity and Force = Next
// turn any plain variant into a lawful buffered one (the Unbuffered
// wrappers below), and the Buffer combinators add real batching whose
// Flush/Force escape hatches restore the unbuffered observable behavior.

// unbufProducer equips a plain producer with the Force = Next default.
type unbufProducer[S, T, U any] struct{ inner Producer[S, T, U] }

// Next implements Producer.
func (p unbufProducer[S, T, U]) Next(s S) Step[S, T, U] { return p.inner.Next(s) }

// Force implements BufProducer; identical to Next, nothing is buffered.
func (p unbufProducer[S, T, U]) Force(s S) Step[S, T, U] { return p.inner.Next(s) }

// UnbufferedProducer wraps a plain producer as a BufProducer with the
// trivial Force = Next default.
func UnbufferedProducer[S, T, U any](p Producer[S, T, U]) unbufProducer[S, T, U] {
	return unbufProducer[S, T, U]{inner: p}
}

// unbufConsumer equips a plain consumer with the Flush = identity default.
type unbufConsumer[S, T, U any] struct{ inner Consumer[S, T, U] }

// Push implements Consumer.
func (c unbufConsumer[S, T, U]) Push(s S, item T) S { return c.inner.Push(s, item) }

// Close implements Consumer.
func (c unbufConsumer[S, T, U]) Close(s S) U { return c.inner.Close(s) }

// Flush implements BufConsumer; identity, nothing is buffered.
func (c unbufConsumer[S, T, U]) Flush(s S) S { return s }

// UnbufferedConsumer wraps a plain consumer as a BufConsumer with the
// trivial Flush = identity default.
func UnbufferedConsumer[S, T, U any](c Consumer[S, T, U]) unbufConsumer[S, T, U] {
	return unbufConsumer[S, T, U]{inner: c}
}

// unbufReader equips a plain reader with the Flush = identity default.
type unbufReader[S, T, U any] struct{ inner Reader[S, T, U] }

// Read implements Reader.
func (r unbufReader[S, T, U]) Read(s S, src []T) (S, int) { return r.inner.Read(s, src) }

// Close implements Reader.
func (r unbufReader[S, T, U]) Close(s S) U { return r.inner.Close(s) }

// Flush implements BufReader; identity, nothing is staged.
func (r unbufReader[S, T, U]) Flush(s S) S { return s }

// UnbufferedReader wraps a plain reader as a BufReader with the trivial
// Flush = identity default.
func UnbufferedReader[S, T, U any](r Reader[S, T, U]) unbufReader[S, T, U] {
	return unbufReader[S, T, U]{inner: r}
}

// unbufWriter equips a plain writer with the Force = Write default.
type unbufWriter[S, T, U any] struct{ inner Writer[S, T, U] }

// Write implements Writer.
func (w unbufWriter[S, T, U]) Write(s S, dst []T) (Progress[S, U], int) {
	return w.inner.Write(s, dst)
}

// Force implements BufWriter; identical to Write, nothing is buffered.
func (w unbufWriter[S, T, U]) Force(s S, dst []T) (Progress[S, U], int) {
	return w.inner.Write(s, dst)
}

// UnbufferedWriter wraps a plain writer as a BufWriter with the trivial
// Force = Write default.
func UnbufferedWriter[S, T, U any](w Writer[S, T, U]) unbufWriter[S, T, U] {
	return unbufWriter[S, T, U]{inner: w}
}

// BufState carries a buffering wrapper's inner state plus the pending
// items that have been accepted but not yet forwarded.
type BufState[S, T any] struct {
	Inner   S
	pending []T
}

// Buffered creates the initial buffered state over an inner state:
// Buffered[T](inner).
func Buffered[T, S any](inner S) BufState[S, T] {
	return BufState[S, T]{Inner: inner}
}

// bufConsumer batches pushes and forwards them to the inner consumer
// when the batch reaches n items, on Flush, and on Close.
type bufConsumer[S, T, U any] struct {
	inner Consumer[S, T, U]
	n     int
}

func (c bufConsumer[S, T, U]) flush(s BufState[S, T]) BufState[S, T] {
	for _, item := range s.pending {
		s.Inner = c.inner.Push(s.Inner, item)
	}
	s.pending = s.pending[:0]
	return s
}

// Push implements Consumer. Like append, Push may reuse the pending
// buffer's backing array; old states must not be pushed to again.
func (c bufConsumer[S, T, U]) Push(s BufState[S, T], item T) BufState[S, T] {
	s.pending = append(s.pending, item)
	if len(s.pending) >= c.n {
		return c.flush(s)
	}
	return s
}

// Flush implements BufConsumer: every pending item reaches the inner
// consumer.
func (c bufConsumer[S, T, U]) Flush(s BufState[S, T]) BufState[S, T] {
	return c.flush(s)
}

// Close implements Consumer: flushes implicitly, then closes the inner
// consumer. Pending items are never lost at the end of the sequence.
func (c bufConsumer[S, T, U]) Close(s BufState[S, T]) U {
	s = c.flush(s)
	return c.inner.Close(s.Inner)
}

// BufferConsumer batches pushes to inner into groups of n. A size of 1
// or less forwards every push immediately.
func BufferConsumer[S, T, U any](inner Consumer[S, T, U], n int) bufConsumer[S, T, U] {
	return bufConsumer[S, T, U]{inner: inner, n: n}
}

// ReadAhead carries a prefetching producer's inner state, the lookahead
// buffer, and the terminal once the source has ended.
type ReadAhead[S, T, U any] struct {
	Inner S
	ahead []T
	tail  U
	done  bool
}

// Prefetch creates the initial read-ahead state over an inner state:
// Prefetch[T, U](inner).
func Prefetch[T, U, S any](inner S) ReadAhead[S, T, U] {
	return ReadAhead[S, T, U]{Inner: inner}
}

// bufProducer pulls up to n items ahead of the caller. Next refills the
// lookahead when it runs dry; Force never refills, so at most one pull
// reaches the source.
type bufProducer[S, T, U any] struct {
	inner Producer[S, T, U]
	n     int
}

func (p bufProducer[S, T, U]) pop(s ReadAhead[S, T, U]) Step[ReadAhead[S, T, U], T, U] {
	item := s.ahead[0]
	s.ahead = s.ahead[1:]
	return Yield[U](s, item)
}

// Next implements Producer: refills the lookahead from the source when
// empty, then yields from it.
func (p bufProducer[S, T, U]) Next(s ReadAhead[S, T, U]) Step[ReadAhead[S, T, U], T, U] {
	for !s.done && len(s.ahead) < p.n {
		st := p.inner.Next(s.Inner)
		ns, item, ok := st.GetYield()
		if !ok {
			s.tail, _ = st.GetDone()
			s.done = true
			break
		}
		s.Inner = ns
		s.ahead = append(s.ahead, item)
	}
	return p.Force(s)
}

// Force implements BufProducer: drains the lookahead first and pulls the
// source at most once, so a stalling source cannot trap buffered items.
func (p bufProducer[S, T, U]) Force(s ReadAhead[S, T, U]) Step[ReadAhead[S, T, U], T, U] {
	if len(s.ahead) > 0 {
		return p.pop(s)
	}
	if s.done {
		return Done[ReadAhead[S, T, U], T](s.tail)
	}
	st := p.inner.Next(s.Inner)
	ns, item, ok := st.GetYield()
	if !ok {
		tail, _ := st.GetDone()
		return Done[ReadAhead[S, T, U], T](tail)
	}
	s.Inner = ns
	return Yield[U](s, item)
}

// BufferProducer reads up to n items ahead of the caller. A size of 1 or
// less disables the lookahead.
func BufferProducer[S, T, U any](inner Producer[S, T, U], n int) bufProducer[S, T, U] {
	return bufProducer[S, T, U]{inner: inner, n: n}
}

// bufReader stages incoming batches and forwards them to the inner
// reader once n items have accumulated, on Flush, and on Close.
type bufReader[S, T, U any] struct {
	inner Reader[S, T, U]
	n     int
}

func (r bufReader[S, T, U]) flush(s BufState[S, T]) BufState[S, T] {
	for len(s.pending) > 0 {
		ns, k := r.inner.Read(s.Inner, s.pending)
		s.Inner = ns
		if k == 0 {
			break
		}
		s.pending = s.pending[:copy(s.pending, s.pending[k:])]
	}
	return s
}

// Read implements Reader. The whole of src is staged (copied), so the
// caller keeps ownership of src regardless of how much the inner reader
// has consumed.
func (r bufReader[S, T, U]) Read(s BufState[S, T], src []T) (BufState[S, T], int) {
	s.pending = append(s.pending, src...)
	if len(s.pending) >= r.n {
		s = r.flush(s)
	}
	return s, len(src)
}

// Flush implements BufReader.
func (r bufReader[S, T, U]) Flush(s BufState[S, T]) BufState[S, T] {
	return r.flush(s)
}

// Close implements Reader: flushes implicitly, then closes the inner
// reader. An inner reader that stalls during the final flush loses the
// remainder; sinks that accept Close must accept what precedes it.
func (r bufReader[S, T, U]) Close(s BufState[S, T]) U {
	s = r.flush(s)
	return r.inner.Close(s.Inner)
}

// BufferReader stages batches for inner in groups of at least n items.
func BufferReader[S, T, U any](inner Reader[S, T, U], n int) bufReader[S, T, U] {
	return bufReader[S, T, U]{inner: inner, n: n}
}
