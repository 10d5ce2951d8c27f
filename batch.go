// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

// Per-item / batch adapters. A Reader is a Consumer that accepts its
// items through a borrowed slice; a Writer is a Producer that delivers
// them the same way. The adapters make that correspondence executable:
// batch calls become loops over the per-item operations.

// consumerReader adapts a per-item consumer to the batch Reader shape.
type consumerReader[S, T, U any] struct{ inner Consumer[S, T, U] }

// Read implements Reader. Every item of src is pushed; items are read
// out of the borrowed slice, never retained, so the caller keeps
// ownership of src.
func (r consumerReader[S, T, U]) Read(s S, src []T) (S, int) {
	for _, item := range src {
		s = r.inner.Push(s, item)
	}
	return s, len(src)
}

// Close implements Reader.
func (r consumerReader[S, T, U]) Close(s S) U {
	return r.inner.Close(s)
}

// ConsumerReader adapts a per-item consumer to the batch Reader shape.
func ConsumerReader[S, T, U any](c Consumer[S, T, U]) consumerReader[S, T, U] {
	return consumerReader[S, T, U]{inner: c}
}

// producerWriter adapts a per-item producer to the batch Writer shape.
type producerWriter[S, T, U any] struct{ inner Producer[S, T, U] }

// Write implements Writer: pulls from the producer until dst is full or
// the sequence ends inside the batch.
func (w producerWriter[S, T, U]) Write(s S, dst []T) (Progress[S, U], int) {
	n := 0
	for n < len(dst) {
		st := w.inner.Next(s)
		ns, item, ok := st.GetYield()
		if !ok {
			tail, _ := st.GetDone()
			return Closed[S](tail), n
		}
		s = ns
		dst[n] = item
		n++
	}
	return Open[U](s), n
}

// ProducerWriter adapts a per-item producer to the batch Writer shape.
func ProducerWriter[S, T, U any](p Producer[S, T, U]) producerWriter[S, T, U] {
	return producerWriter[S, T, U]{inner: p}
}
