// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

// Pure / imperative adapters. The pure formulation threads states by
// value; the imperative one mutates in place. Going from pure to
// imperative is always sound. Going the other way relies on S copying
// independently: the wrapper advances a local copy and returns it, so a
// state holding shared references (pointers, maps, channels) would leak
// mutation between copies and lose the snapshot-retry property that
// makes the pure form worth having.

// mutFromProducer adapts a pure producer to the imperative interface.
type mutFromProducer[S, T, U any] struct{ inner Producer[S, T, U] }

// Next implements MutProducer.
func (p mutFromProducer[S, T, U]) Next(s *S) Emit[T, U] {
	st := p.inner.Next(*s)
	if ns, item, ok := st.GetYield(); ok {
		*s = ns
		return Item[U](item)
	}
	tail, _ := st.GetDone()
	return End[T](tail)
}

// MutFromProducer adapts a pure producer to the imperative interface.
func MutFromProducer[S, T, U any](p Producer[S, T, U]) mutFromProducer[S, T, U] {
	return mutFromProducer[S, T, U]{inner: p}
}

// producerFromMut adapts an imperative producer to the pure interface
// via value copies of S.
type producerFromMut[S, T, U any] struct{ inner MutProducer[S, T, U] }

// Next implements Producer.
func (p producerFromMut[S, T, U]) Next(s S) Step[S, T, U] {
	e := p.inner.Next(&s)
	if item, ok := e.GetItem(); ok {
		return Yield[U](s, item)
	}
	tail, _ := e.GetEnd()
	return Done[S, T](tail)
}

// ProducerFromMut adapts an imperative producer to the pure interface.
// S must copy independently; see the package documentation.
func ProducerFromMut[S, T, U any](p MutProducer[S, T, U]) producerFromMut[S, T, U] {
	return producerFromMut[S, T, U]{inner: p}
}

// mutFromConsumer adapts a pure consumer to the imperative interface.
type mutFromConsumer[S, T, U any] struct{ inner Consumer[S, T, U] }

// Push implements MutConsumer.
func (c mutFromConsumer[S, T, U]) Push(s *S, item T) {
	*s = c.inner.Push(*s, item)
}

// Close implements MutConsumer.
func (c mutFromConsumer[S, T, U]) Close(s *S) U {
	return c.inner.Close(*s)
}

// MutFromConsumer adapts a pure consumer to the imperative interface.
func MutFromConsumer[S, T, U any](c Consumer[S, T, U]) mutFromConsumer[S, T, U] {
	return mutFromConsumer[S, T, U]{inner: c}
}

// consumerFromMut adapts an imperative consumer to the pure interface
// via value copies of S.
type consumerFromMut[S, T, U any] struct{ inner MutConsumer[S, T, U] }

// Push implements Consumer.
func (c consumerFromMut[S, T, U]) Push(s S, item T) S {
	c.inner.Push(&s, item)
	return s
}

// Close implements Consumer.
func (c consumerFromMut[S, T, U]) Close(s S) U {
	return c.inner.Close(&s)
}

// ConsumerFromMut adapts an imperative consumer to the pure interface.
// S must copy independently; see the package documentation.
func ConsumerFromMut[S, T, U any](c MutConsumer[S, T, U]) consumerFromMut[S, T, U] {
	return consumerFromMut[S, T, U]{inner: c}
}

// mutFromReader adapts a pure reader to the imperative interface.
type mutFromReader[S, T, U any] struct{ inner Reader[S, T, U] }

// Read implements MutReader.
func (r mutFromReader[S, T, U]) Read(s *S, src []T) int {
	ns, n := r.inner.Read(*s, src)
	*s = ns
	return n
}

// Close implements MutReader.
func (r mutFromReader[S, T, U]) Close(s *S) U {
	return r.inner.Close(*s)
}

// MutFromReader adapts a pure reader to the imperative interface.
func MutFromReader[S, T, U any](r Reader[S, T, U]) mutFromReader[S, T, U] {
	return mutFromReader[S, T, U]{inner: r}
}

// mutFromWriter adapts a pure writer to the imperative interface.
type mutFromWriter[S, T, U any] struct{ inner Writer[S, T, U] }

// Write implements MutWriter. After done is reported the state is left
// as is; calling Write again is a caller error, as for any imperative
// variant.
func (w mutFromWriter[S, T, U]) Write(s *S, dst []T) (int, U, bool) {
	tail, n := w.inner.Write(*s, dst)
	if ns, ok := tail.GetOpen(); ok {
		*s = ns
		var zero U
		return n, zero, false
	}
	u, _ := tail.GetClosed()
	return n, u, true
}

// MutFromWriter adapts a pure writer to the imperative interface.
func MutFromWriter[S, T, U any](w Writer[S, T, U]) mutFromWriter[S, T, U] {
	return mutFromWriter[S, T, U]{inner: w}
}
