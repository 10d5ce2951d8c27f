// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

// Item and tail transforms. Producers map covariantly over their items
// and terminals; consumers map contravariantly over their items, which
// is the arrow reversal of the two families made visible.

// mapProducer applies f to each yielded item.
type mapProducer[S, T, R, U any] struct {
	inner Producer[S, T, U]
	f     func(T) R
}

// Next implements Producer.
func (p mapProducer[S, T, R, U]) Next(s S) Step[S, R, U] {
	st := p.inner.Next(s)
	if ns, item, ok := st.GetYield(); ok {
		return Yield[U](ns, p.f(item))
	}
	tail, _ := st.GetDone()
	return Done[S, R](tail)
}

// MapProducer applies f to each item yielded by p.
func MapProducer[S, T, R, U any](p Producer[S, T, U], f func(T) R) mapProducer[S, T, R, U] {
	return mapProducer[S, T, R, U]{inner: p, f: f}
}

// mapTail applies f to the terminal continuation.
type mapTail[S, T, U, V any] struct {
	inner Producer[S, T, U]
	f     func(U) V
}

// Next implements Producer.
func (p mapTail[S, T, U, V]) Next(s S) Step[S, T, V] {
	st := p.inner.Next(s)
	if ns, item, ok := st.GetYield(); ok {
		return Yield[V](ns, item)
	}
	tail, _ := st.GetDone()
	return Done[S, T](p.f(tail))
}

// MapTail applies f to the terminal continuation of p. This is how a
// producer-side error can be folded into the continuation type, and how
// a finished segment's unit terminal becomes the next segment's initial
// state for [ChainProducer].
func MapTail[S, T, U, V any](p Producer[S, T, U], f func(U) V) mapTail[S, T, U, V] {
	return mapTail[S, T, U, V]{inner: p, f: f}
}

// filterProducer yields only the items satisfying the predicate.
type filterProducer[S, T, U any] struct {
	inner Producer[S, T, U]
	pred  func(T) bool
}

// Next implements Producer. Advances the inner producer until an item
// passes or the sequence ends; on an infinite producer with an
// unsatisfiable predicate, Next does not return.
func (p filterProducer[S, T, U]) Next(s S) Step[S, T, U] {
	for {
		st := p.inner.Next(s)
		ns, item, ok := st.GetYield()
		if !ok {
			tail, _ := st.GetDone()
			return Done[S, T](tail)
		}
		s = ns
		if p.pred(item) {
			return Yield[U](s, item)
		}
	}
}

// FilterProducer yields only the items of p satisfying pred.
func FilterProducer[S, T, U any](p Producer[S, T, U], pred func(T) bool) filterProducer[S, T, U] {
	return filterProducer[S, T, U]{inner: p, pred: pred}
}

// mapConsumer applies f to each item before pushing it on.
type mapConsumer[S, T, R, U any] struct {
	inner Consumer[S, T, U]
	f     func(R) T
}

// Push implements Consumer.
func (c mapConsumer[S, T, R, U]) Push(s S, item R) S {
	return c.inner.Push(s, c.f(item))
}

// Close implements Consumer.
func (c mapConsumer[S, T, R, U]) Close(s S) U {
	return c.inner.Close(s)
}

// MapConsumer pre-applies f to every pushed item. The transform runs in
// the reverse direction of [MapProducer]: a consumer of T becomes a
// consumer of R given f: R -> T.
func MapConsumer[S, T, R, U any](c Consumer[S, T, U], f func(R) T) mapConsumer[S, T, R, U] {
	return mapConsumer[S, T, R, U]{inner: c, f: f}
}
