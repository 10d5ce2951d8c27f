// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq_test

import (
	"slices"
	"testing"

	"code.hybscloud.com/seq"
)

func TestBufferConsumerCloseFlushes(t *testing.T) {
	var inner seq.Consumer[[]byte, byte, []byte] = seq.SliceConsumer[byte]()
	c := seq.BufferConsumer(inner, 4)

	// Two pushes into a buffer of four, then Close with no manual Flush:
	// the implicit flush must deliver both bytes.
	s := c.Push(seq.Buffered[byte]([]byte(nil)), 'a')
	s = c.Push(s, 'b')
	out := c.Close(s)
	if string(out) != "ab" {
		t.Fatalf("got %q, want ab", out)
	}
}

func TestBufferConsumerFlushOnFull(t *testing.T) {
	var inner seq.Consumer[[]int, int, []int] = seq.SliceConsumer[int]()
	c := seq.BufferConsumer(inner, 2)

	s := c.Push(seq.Buffered[int]([]int(nil)), 1)
	if got := len(s.Inner); got != 0 {
		t.Fatalf("flushed early: inner has %d items", got)
	}
	s = c.Push(s, 2)
	if !slices.Equal(s.Inner, []int{1, 2}) {
		t.Fatalf("got inner %v, want [1 2]", s.Inner)
	}
}

func TestBufferConsumerExplicitFlush(t *testing.T) {
	var inner seq.Consumer[[]int, int, []int] = seq.SliceConsumer[int]()
	c := seq.BufferConsumer(inner, 8)

	s := c.Push(seq.Buffered[int]([]int(nil)), 1)
	s = c.Flush(s)
	if !slices.Equal(s.Inner, []int{1}) {
		t.Fatalf("got inner %v, want [1]", s.Inner)
	}
}

func TestUnbufferedConsumerFlushIdentity(t *testing.T) {
	var inner seq.Consumer[[]int, int, []int] = seq.SliceConsumer[int]()
	var c seq.BufConsumer[[]int, int, []int] = seq.UnbufferedConsumer(inner)

	s := c.Push(nil, 1)
	s = c.Flush(s)
	s = c.Push(s, 2)
	out := c.Close(s)
	if !slices.Equal(out, []int{1, 2}) {
		t.Fatalf("got %v, want [1 2]", out)
	}
}

func TestBufferProducerReadsAhead(t *testing.T) {
	pulls := 0
	base := seq.ProducerFunc[[]int, int, struct{}](func(s []int) seq.Step[[]int, int, struct{}] {
		pulls++
		if len(s) == 0 {
			return seq.Done[[]int, int](struct{}{})
		}
		return seq.Yield[struct{}](s[1:], s[0])
	})
	p := seq.BufferProducer[[]int, int, struct{}](base, 3)

	st := p.Next(seq.Prefetch[int, struct{}]([]int{1, 2, 3, 4, 5}))
	_, item, ok := st.GetYield()
	if !ok || item != 1 {
		t.Fatalf("got (%v, %v), want item 1", item, ok)
	}
	if pulls != 3 {
		t.Fatalf("got %d pulls, want 3", pulls)
	}
}

func TestBufferProducerForceBypassesLookahead(t *testing.T) {
	pulls := 0
	base := seq.ProducerFunc[[]int, int, struct{}](func(s []int) seq.Step[[]int, int, struct{}] {
		pulls++
		if len(s) == 0 {
			return seq.Done[[]int, int](struct{}{})
		}
		return seq.Yield[struct{}](s[1:], s[0])
	})
	p := seq.BufferProducer[[]int, int, struct{}](base, 3)

	st := p.Next(seq.Prefetch[int, struct{}]([]int{1, 2, 3, 4, 5}))
	s, _, _ := st.GetYield()

	// Force drains the lookahead without touching the source.
	st = p.Force(s)
	_, item, ok := st.GetYield()
	if !ok || item != 2 {
		t.Fatalf("got (%v, %v), want item 2", item, ok)
	}
	if pulls != 3 {
		t.Fatalf("got %d pulls, want 3 (no new pull)", pulls)
	}
}

func TestBufferProducerDrains(t *testing.T) {
	var base seq.Producer[[]int, int, struct{}] = seq.SliceProducer[int]()
	p := seq.BufferProducer(base, 2)

	items, _ := drain[seq.ReadAhead[[]int, int, struct{}], int, struct{}](t, p, seq.Prefetch[int, struct{}]([]int{1, 2, 3, 4, 5}))
	if !slices.Equal(items, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("got %v, want [1 2 3 4 5]", items)
	}
}

func TestUnbufferedProducerForceIsNext(t *testing.T) {
	var base seq.Producer[[]int, int, struct{}] = seq.SliceProducer[int]()
	var p seq.BufProducer[[]int, int, struct{}] = seq.UnbufferedProducer(base)

	st := p.Force([]int{9})
	_, item, ok := st.GetYield()
	if !ok || item != 9 {
		t.Fatalf("got (%v, %v), want item 9", item, ok)
	}
}

func TestBufferReaderStages(t *testing.T) {
	var inner seq.Reader[[]int, int, []int] = seq.SliceReader[int]()
	r := seq.BufferReader(inner, 3)

	s, n := r.Read(seq.Buffered[int]([]int(nil)), []int{1, 2})
	if n != 2 {
		t.Fatalf("got count %d, want 2", n)
	}
	if len(s.Inner) != 0 {
		t.Fatalf("flushed early: inner has %v", s.Inner)
	}

	s, _ = r.Read(s, []int{3, 4})
	if !slices.Equal(s.Inner, []int{1, 2, 3, 4}) {
		t.Fatalf("got inner %v, want [1 2 3 4]", s.Inner)
	}
}

func TestBufferReaderCloseFlushes(t *testing.T) {
	var inner seq.Reader[[]int, int, []int] = seq.SliceReader[int]()
	r := seq.BufferReader(inner, 100)

	s, _ := r.Read(seq.Buffered[int]([]int(nil)), []int{1, 2})
	out := r.Close(s)
	if !slices.Equal(out, []int{1, 2}) {
		t.Fatalf("got %v, want [1 2]", out)
	}
}

func TestUnbufferedReaderWriter(t *testing.T) {
	var ir seq.Reader[[]int, int, []int] = seq.SliceReader[int]()
	var r seq.BufReader[[]int, int, []int] = seq.UnbufferedReader(ir)

	s, _ := r.Read(nil, []int{1})
	s = r.Flush(s)
	if out := r.Close(s); !slices.Equal(out, []int{1}) {
		t.Fatalf("got %v, want [1]", out)
	}

	var iw seq.Writer[[]int, int, struct{}] = seq.SliceWriter[int]()
	var w seq.BufWriter[[]int, int, struct{}] = seq.UnbufferedWriter(iw)

	dst := make([]int, 4)
	tail, n := w.Force([]int{1, 2}, dst)
	if !tail.IsClosed() || n != 2 {
		t.Fatalf("got (closed=%v, n=%d), want (true, 2)", tail.IsClosed(), n)
	}
}
