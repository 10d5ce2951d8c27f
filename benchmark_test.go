// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq_test

import (
	"testing"

	"code.hybscloud.com/seq"
)

// BenchmarkSliceProducerNext measures a single yield step.
func BenchmarkSliceProducerNext(b *testing.B) {
	var p seq.Producer[[]int, int, struct{}] = seq.SliceProducer[int]()
	xs := make([]int, 1024)

	for b.Loop() {
		_ = p.Next(xs)
	}
}

// BenchmarkSliceProducerDrain measures a full traversal of 1024 items.
func BenchmarkSliceProducerDrain(b *testing.B) {
	var p seq.Producer[[]int, int, struct{}] = seq.SliceProducer[int]()
	xs := make([]int, 1024)

	for b.Loop() {
		s := xs
		for {
			st := p.Next(s)
			ns, _, ok := st.GetYield()
			if !ok {
				break
			}
			s = ns
		}
	}
}

// BenchmarkCopy measures the per-item pump over 1024 items.
func BenchmarkCopy(b *testing.B) {
	var p seq.Producer[[]int, int, struct{}] = seq.SliceProducer[int]()
	var c seq.Consumer[[]int, int, []int] = seq.SliceConsumer[int]()
	xs := make([]int, 1024)
	dst := make([]int, 0, 1024)

	for b.Loop() {
		_, _ = seq.Copy(p, xs, c, dst[:0])
	}
}

// BenchmarkCopyBatch measures the batch pump over 1024 bytes through a
// 64-byte buffer.
func BenchmarkCopyBatch(b *testing.B) {
	var w seq.Writer[[]byte, byte, struct{}] = seq.SliceWriter[byte]()
	var r seq.Reader[[]byte, byte, []byte] = seq.SliceReader[byte]()
	bs := make([]byte, 1024)
	dst := make([]byte, 0, 1024)
	buf := make([]byte, 64)

	for b.Loop() {
		_, _ = seq.CopyBatch(w, bs, r, dst[:0], buf)
	}
}

// BenchmarkBufferProducer measures the lookahead wrapper against the
// plain traversal it buffers.
func BenchmarkBufferProducer(b *testing.B) {
	var inner seq.Producer[[]int, int, struct{}] = seq.SliceProducer[int]()
	var p seq.Producer[seq.ReadAhead[[]int, int, struct{}], int, struct{}] = seq.BufferProducer(inner, 64)
	xs := make([]int, 1024)

	for b.Loop() {
		s := seq.Prefetch[int, struct{}](xs)
		for {
			st := p.Next(s)
			ns, _, ok := st.GetYield()
			if !ok {
				break
			}
			s = ns
		}
	}
}

// BenchmarkValues measures the range-over-func bridge.
func BenchmarkValues(b *testing.B) {
	var p seq.Producer[[]int, int, struct{}] = seq.SliceProducer[int]()
	xs := make([]int, 1024)

	for b.Loop() {
		for range seq.Values(p, xs) {
		}
	}
}
