// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import "context"

// Pumps. Copy connects the per-item families; CopyBatch connects the
// batch families through a caller-owned buffer. Each pump is the
// left-to-right traversal both sides already agree on, so the loop body
// is a single handoff.

// Copy drains the producer into the consumer, returning the producer's
// terminal continuation and the consumer's final state. The consumer is
// not closed; pair with Close or use [CopyClose].
func Copy[SP, SC, T, UP, UC any](p Producer[SP, T, UP], ps SP, c Consumer[SC, T, UC], cs SC) (UP, SC) {
	for {
		st := p.Next(ps)
		ns, item, ok := st.GetYield()
		if !ok {
			tail, _ := st.GetDone()
			return tail, cs
		}
		ps = ns
		cs = c.Push(cs, item)
	}
}

// CopyClose drains the producer into the consumer and closes it,
// returning both terminal continuations.
func CopyClose[SP, SC, T, UP, UC any](p Producer[SP, T, UP], ps SP, c Consumer[SC, T, UC], cs SC) (UP, UC) {
	tail, cs := Copy(p, ps, c, cs)
	return tail, c.Close(cs)
}

// CopyEff drains an effectful producer into an effectful consumer and
// closes it. The first Left from either side aborts the pump; per the
// error model, neither state is usable afterwards.
func CopyEff[SP, SC, T, UP, UC, E any](
	ctx context.Context,
	p EffProducer[SP, T, UP, E], ps SP,
	c EffConsumer[SC, T, UC, E], cs SC,
) Either[E, Pair[UP, UC]] {
	for {
		r := p.Next(ctx, ps)
		st, ok := r.GetRight()
		if !ok {
			e, _ := r.GetLeft()
			return Left[E, Pair[UP, UC]](e)
		}
		ns, item, yielded := st.GetYield()
		if !yielded {
			tail, _ := st.GetDone()
			cr := c.Close(ctx, cs)
			uc, closed := cr.GetRight()
			if !closed {
				e, _ := cr.GetLeft()
				return Left[E, Pair[UP, UC]](e)
			}
			return Right[E](Pair[UP, UC]{Fst: tail, Snd: uc})
		}
		ps = ns
		pr := c.Push(ctx, cs, item)
		ncs, pushed := pr.GetRight()
		if !pushed {
			e, _ := pr.GetLeft()
			return Left[E, Pair[UP, UC]](e)
		}
		cs = ncs
	}
}

// CopyBatch pumps a batch writer into a batch reader through buf,
// returning the writer's terminal continuation and the reader's final
// state. The reader is not closed.
//
// Both sides must make progress: a writer that stays open while writing
// nothing, or a reader that consumes nothing of a nonempty batch, would
// stall the pump and panics instead.
func CopyBatch[SW, SR, T, UW, UR any](w Writer[SW, T, UW], ws SW, r Reader[SR, T, UR], rs SR, buf []T) (UW, SR) {
	for {
		tail, n := w.Write(ws, buf)
		batch := buf[:n]
		for len(batch) > 0 {
			ns, k := r.Read(rs, batch)
			rs = ns
			if k == 0 {
				panic("seq: reader made no progress")
			}
			batch = batch[k:]
		}
		if u, ok := tail.GetClosed(); ok {
			return u, rs
		}
		ws, _ = tail.GetOpen()
		if n == 0 {
			panic("seq: writer made no progress")
		}
	}
}

// CopyBatchEff pumps an effectful writer into an effectful reader
// through buf and closes the reader, returning the writer's terminal
// continuation and the reader's. The first Left aborts the pump.
func CopyBatchEff[SW, SR, T, UW, UR, E any](
	ctx context.Context,
	w EffWriter[SW, T, UW, E], ws SW,
	r EffReader[SR, T, UR, E], rs SR,
	buf []T,
) Either[E, Pair[UW, UR]] {
	for {
		wr := w.Write(ctx, ws, buf)
		res, ok := wr.GetRight()
		if !ok {
			e, _ := wr.GetLeft()
			return Left[E, Pair[UW, UR]](e)
		}
		batch := buf[:res.N]
		for len(batch) > 0 {
			rr := r.Read(ctx, rs, batch)
			rres, read := rr.GetRight()
			if !read {
				e, _ := rr.GetLeft()
				return Left[E, Pair[UW, UR]](e)
			}
			rs = rres.State
			if rres.N == 0 {
				panic("seq: reader made no progress")
			}
			batch = batch[rres.N:]
		}
		if u, ok := res.Tail.GetClosed(); ok {
			cr := r.Close(ctx, rs)
			ur, closed := cr.GetRight()
			if !closed {
				e, _ := cr.GetLeft()
				return Left[E, Pair[UW, UR]](e)
			}
			return Right[E](Pair[UW, UR]{Fst: u, Snd: ur})
		}
		ws, _ = res.Tail.GetOpen()
		if res.N == 0 {
			panic("seq: writer made no progress")
		}
	}
}
