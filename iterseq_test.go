// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq_test

import (
	"slices"
	"testing"

	"code.hybscloud.com/seq"
)

func TestValues(t *testing.T) {
	var p seq.Producer[[]string, string, struct{}] = seq.SliceProducer[string]()
	got := slices.Collect(seq.Values(p, []string{"a", "b", "c"}))
	if !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Fatalf("got %v, want [a b c]", got)
	}
}

func TestValuesEarlyBreak(t *testing.T) {
	var p seq.Producer[int, int, seq.Never] = seq.Count()
	var got []int
	for v := range seq.Values(p, 0) {
		got = append(got, v)
		if len(got) == 4 {
			break
		}
	}
	if !slices.Equal(got, []int{0, 1, 2, 3}) {
		t.Fatalf("got %v, want [0 1 2 3]", got)
	}
}

func TestPullProducer(t *testing.T) {
	var p seq.MutProducer[seq.PullState[int], int, struct{}] = seq.PullProducer[int]()
	s := seq.Pulled(slices.Values([]int{5, 6}))

	var got []int
	for {
		e := p.Next(&s)
		item, ok := e.GetItem()
		if !ok {
			break
		}
		got = append(got, item)
	}
	if !slices.Equal(got, []int{5, 6}) {
		t.Fatalf("got %v, want [5 6]", got)
	}

	// After the end the producer keeps reporting the end.
	if e := p.Next(&s); !e.IsEnd() {
		t.Fatal("exhausted pull state must stay ended")
	}
}

func TestPullStateStop(t *testing.T) {
	var p seq.MutProducer[seq.PullState[int], int, struct{}] = seq.PullProducer[int]()
	s := seq.Pulled(slices.Values([]int{1, 2, 3}))
	s.Stop()
	if e := p.Next(&s); !e.IsEnd() {
		t.Fatal("stopped pull state must report the end")
	}
}

func TestPushAll(t *testing.T) {
	var c seq.Consumer[[]int, int, []int] = seq.SliceConsumer[int]()
	s := seq.PushAll(c, nil, slices.Values([]int{1, 2, 3}))
	if got := c.Close(s); !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("got %v, want [1 2 3]", got)
	}
}

func TestValuesRoundTrip(t *testing.T) {
	var p seq.Producer[[]byte, byte, struct{}] = seq.SliceProducer[byte]()
	var c seq.Consumer[[]byte, byte, []byte] = seq.SliceConsumer[byte]()
	s := seq.PushAll(c, nil, seq.Values(p, []byte("roundtrip")))
	if got := c.Close(s); string(got) != "roundtrip" {
		t.Fatalf("got %q, want roundtrip", got)
	}
}
