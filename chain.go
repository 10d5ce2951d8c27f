// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

// Heterogeneous concatenation. A terminal continuation may itself hold
// the state of another producer; chaining makes that composition a
// producer again. The first segment's terminal type is exactly the
// second segment's state type, so the boundary is a plain value handoff.

// ChainState is the state of a two-segment concatenation: the first
// segment's state before the boundary, the second's after.
type ChainState[S1, S2 any] struct {
	first    S1
	second   S2
	inSecond bool
}

// Chain creates the initial state of a concatenation from the first
// segment's initial state.
func Chain[S2, S1 any](first S1) ChainState[S1, S2] {
	return ChainState[S1, S2]{first: first}
}

// chainProducer concatenates producer a, whose terminal continuation is
// the initial state of producer b, with b itself.
type chainProducer[S1, S2, T, U any] struct {
	a Producer[S1, T, S2]
	b Producer[S2, T, U]
}

// Next implements Producer. Crossing the segment boundary consumes no
// call: when a ends, its continuation seeds b and b is advanced
// immediately.
func (p chainProducer[S1, S2, T, U]) Next(s ChainState[S1, S2]) Step[ChainState[S1, S2], T, U] {
	if !s.inSecond {
		st := p.a.Next(s.first)
		if ns, item, ok := st.GetYield(); ok {
			return Yield[U](ChainState[S1, S2]{first: ns}, item)
		}
		tail, _ := st.GetDone()
		s = ChainState[S1, S2]{second: tail, inSecond: true}
	}
	st := p.b.Next(s.second)
	if ns, item, ok := st.GetYield(); ok {
		return Yield[U](ChainState[S1, S2]{second: ns, inSecond: true}, item)
	}
	tail, _ := st.GetDone()
	return Done[ChainState[S1, S2], T](tail)
}

// ChainProducer concatenates two producers where the first segment's
// terminal continuation is the second segment's initial state. Use
// [MapTail] to fit a producer whose terminal type differs.
func ChainProducer[S1, S2, T, U any](a Producer[S1, T, S2], b Producer[S2, T, U]) chainProducer[S1, S2, T, U] {
	return chainProducer[S1, S2, T, U]{a: a, b: b}
}
