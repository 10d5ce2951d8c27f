// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

// Canonical instances. Each corresponds to one of the basic sequence
// shapes: the finite list T*, the infinite repetition forced by the
// empty alternative, and accumulation into a list.

// sliceProducer yields the elements of a slice left to right.
// The state is the unread suffix; the terminal continuation is unit.
type sliceProducer[T any] struct{}

// Next implements Producer.
func (sliceProducer[T]) Next(s []T) Step[[]T, T, struct{}] {
	if len(s) == 0 {
		return Done[[]T, T](struct{}{})
	}
	return Yield[struct{}](s[1:], s[0])
}

// SliceProducer creates a producer over slice states. The initial state
// is the slice itself; advancing never copies elements.
func SliceProducer[T any]() sliceProducer[T] { return sliceProducer[T]{} }

// countProducer yields 0, 1, 2, ... forever. The terminal type is
// Never: the repetition cannot end, which the type records.
type countProducer struct{}

// Next implements Producer.
func (countProducer) Next(s int) Step[int, int, Never] {
	return Yield[Never](s+1, s)
}

// Count creates the infinite counter producer. The state is the next
// value to yield.
func Count() countProducer { return countProducer{} }

// sliceConsumer accumulates pushed items; Close returns the collected
// slice as the terminal continuation.
type sliceConsumer[T any] struct{}

// Push implements Consumer.
//
// Push appends to the state's backing array, so an old state must not be
// pushed to again after a newer one exists — the single-use contract all
// pure states already carry.
func (sliceConsumer[T]) Push(s []T, item T) []T { return append(s, item) }

// Close implements Consumer.
func (sliceConsumer[T]) Close(s []T) []T { return s }

// SliceConsumer creates a consumer that collects items into a slice.
// The zero state (nil) is the empty accumulation.
func SliceConsumer[T any]() sliceConsumer[T] { return sliceConsumer[T]{} }

// sliceReader accumulates batches; the batch analog of sliceConsumer.
type sliceReader[T any] struct{}

// Read implements Reader. The whole of src is consumed; the items are
// copied, so the caller keeps ownership of src.
func (sliceReader[T]) Read(s []T, src []T) ([]T, int) {
	return append(s, src...), len(src)
}

// Close implements Reader.
func (sliceReader[T]) Close(s []T) []T { return s }

// SliceReader creates a reader that collects batches into a slice.
func SliceReader[T any]() sliceReader[T] { return sliceReader[T]{} }

// sliceWriter emits the elements of a slice in batches; the batch analog
// of sliceProducer.
type sliceWriter[T any] struct{}

// Write implements Writer. Elements are copied into dst; when the last
// element is delivered the outcome closes with unit.
func (sliceWriter[T]) Write(s []T, dst []T) (Progress[[]T, struct{}], int) {
	n := copy(dst, s)
	if n == len(s) {
		return Closed[[]T](struct{}{}), n
	}
	return Open[struct{}](s[n:]), n
}

// SliceWriter creates a writer over slice states.
func SliceWriter[T any]() sliceWriter[T] { return sliceWriter[T]{} }
