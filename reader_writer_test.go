// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq_test

import (
	"slices"
	"testing"

	"code.hybscloud.com/seq"
)

func TestSliceWriter(t *testing.T) {
	var w seq.Writer[[]int, int, struct{}] = seq.SliceWriter[int]()

	dst := make([]int, 2)
	tail, n := w.Write([]int{1, 2, 3}, dst)
	if n != 2 || !slices.Equal(dst, []int{1, 2}) {
		t.Fatalf("got (n=%d, dst=%v), want (2, [1 2])", n, dst)
	}
	s, ok := tail.GetOpen()
	if !ok {
		t.Fatal("writer closed early")
	}

	tail, n = w.Write(s, dst)
	if n != 1 || dst[0] != 3 {
		t.Fatalf("got (n=%d, dst[0]=%d), want (1, 3)", n, dst[0])
	}
	if !tail.IsClosed() {
		t.Fatal("writer should be closed after the last element")
	}
}

func TestSliceReader(t *testing.T) {
	var r seq.Reader[[]int, int, []int] = seq.SliceReader[int]()

	s, n := r.Read(nil, []int{1, 2})
	if n != 2 {
		t.Fatalf("got count %d, want 2", n)
	}
	s, _ = r.Read(s, []int{3})
	if out := r.Close(s); !slices.Equal(out, []int{1, 2, 3}) {
		t.Fatalf("got %v, want [1 2 3]", out)
	}
}

func TestReaderBorrowsSource(t *testing.T) {
	var r seq.Reader[[]int, int, []int] = seq.SliceReader[int]()

	src := []int{1, 2, 3}
	s, _ := r.Read(nil, src)

	// The reader holds no claim on src after returning: the caller may
	// overwrite it immediately without disturbing consumed items.
	src[0], src[1], src[2] = 9, 9, 9
	if out := r.Close(s); !slices.Equal(out, []int{1, 2, 3}) {
		t.Fatalf("got %v, want [1 2 3]", out)
	}
}

func TestCopyBatch(t *testing.T) {
	var w seq.Writer[[]int, int, struct{}] = seq.SliceWriter[int]()
	var r seq.Reader[[]int, int, []int] = seq.SliceReader[int]()

	for _, buf := range [][]int{make([]int, 1), make([]int, 2), make([]int, 8)} {
		_, rs := seq.CopyBatch(w, []int{1, 2, 3, 4, 5}, r, nil, buf)
		if out := r.Close(rs); !slices.Equal(out, []int{1, 2, 3, 4, 5}) {
			t.Fatalf("buf %d: got %v, want [1 2 3 4 5]", len(buf), out)
		}
	}
}

func TestConsumerReader(t *testing.T) {
	var c seq.Consumer[[]int, int, []int] = seq.SliceConsumer[int]()
	var r seq.Reader[[]int, int, []int] = seq.ConsumerReader(c)

	s, n := r.Read(nil, []int{1, 2, 3})
	if n != 3 {
		t.Fatalf("got count %d, want 3", n)
	}
	if out := r.Close(s); !slices.Equal(out, []int{1, 2, 3}) {
		t.Fatalf("got %v, want [1 2 3]", out)
	}
}

func TestProducerWriter(t *testing.T) {
	var p seq.Producer[[]int, int, struct{}] = seq.SliceProducer[int]()
	var w seq.Writer[[]int, int, struct{}] = seq.ProducerWriter(p)

	dst := make([]int, 4)
	tail, n := w.Write([]int{1, 2}, dst)
	if n != 2 || !tail.IsClosed() {
		t.Fatalf("got (n=%d, closed=%v), want (2, true)", n, tail.IsClosed())
	}
	if !slices.Equal(dst[:n], []int{1, 2}) {
		t.Fatalf("got %v, want [1 2]", dst[:n])
	}
}

func TestMutFromWriter(t *testing.T) {
	var pw seq.Writer[[]int, int, struct{}] = seq.SliceWriter[int]()
	var w seq.MutWriter[[]int, int, struct{}] = seq.MutFromWriter(pw)

	s := []int{1, 2, 3}
	dst := make([]int, 2)
	n, _, done := w.Write(&s, dst)
	if n != 2 || done {
		t.Fatalf("got (n=%d, done=%v), want (2, false)", n, done)
	}
	n, _, done = w.Write(&s, dst)
	if n != 1 || !done {
		t.Fatalf("got (n=%d, done=%v), want (1, true)", n, done)
	}
}

func TestMutFromReader(t *testing.T) {
	var pr seq.Reader[[]int, int, []int] = seq.SliceReader[int]()
	var r seq.MutReader[[]int, int, []int] = seq.MutFromReader(pr)

	s := []int(nil)
	if n := r.Read(&s, []int{1, 2}); n != 2 {
		t.Fatalf("got count %d, want 2", n)
	}
	if out := r.Close(&s); !slices.Equal(out, []int{1, 2}) {
		t.Fatalf("got %v, want [1 2]", out)
	}
}

func TestProgressMatch(t *testing.T) {
	o := seq.Open[string](5)
	got := seq.MatchProgress(o,
		func(s int) int { return s },
		func(tail string) int { return -1 },
	)
	if got != 5 {
		t.Fatalf("got %d, want 5", got)
	}

	cl := seq.Closed[int]("end")
	if !cl.IsClosed() {
		t.Fatal("want closed")
	}
	if tail, _ := cl.GetClosed(); tail != "end" {
		t.Fatalf("got %q, want end", tail)
	}
}
