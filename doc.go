// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package seq provides generic interface families for sequence
// processing: producers and consumers of items one at a time, and
// readers and writers of items in batches, each in pure, imperative,
// buffered, and fallible-asynchronous formulations.
//
// # Sequence Model
//
// A sequence is an abstract, possibly infinite, ordered collection of
// typed items. Sequences are characterized by regular expressions over
// types — unit, item types, sums, products, Kleene star — augmented with
// an uninhabited alternative that forces infinite repetition. The model
// is never materialized; its role is to pin down the interfaces: every
// formulation below is in one-to-one correspondence with it, and no
// operation can be added or removed without breaking that
// correspondence.
//
// Four type parameters recur throughout:
//
//   - S: opaque progress state, exclusively owned by whoever holds it
//   - T: the item type, yielded or accepted one at a time or in batches
//   - U: the terminal continuation produced when the repeating part
//     ends; possibly another producer's state (see [ChainProducer])
//   - E: the unrecoverable error type; E = [Never] encodes infallibility
//
// # Sum Types
//
// Return shapes of the model are dedicated sums, each with two
// constructors, predicates, comma-ok accessors, and a Match eliminator:
//
//   - [Step]: (S, T) + U — pure producer step ([Yield], [Done])
//   - [Emit]: T + U — imperative producer step ([Item], [End])
//   - [Progress]: S + U — writer outcome ([Open], [Closed])
//   - [Either]: fallible result ([Left], [Right]), with [MapEither],
//     [FlatMapEither], [MapLeftEither]
//   - [Never]: the uninhabited type, eliminated by [Absurd]
//   - [Pair]: plain product, used by pump results
//
// # Interface Families
//
// Producer yields items left to right, lazily:
//
//   - [Producer]: pure, Next(S) Step — the state is consumed per call
//   - [MutProducer]: imperative, Next(*S) Emit
//   - [BufProducer], [MutBufProducer]: add Force, which drains internal
//     buffering before pulling the source
//   - [EffProducer]: fallible and asynchronous
//   - [ActiveProducer]: the caller, not the producer, ends repetition
//   - [ProducerFunc], [MutProducerFunc], [EffProducerFunc]: func adapters
//
// Consumer accepts items left to right, the dual family:
//
//   - [Consumer]: pure, Push(S, T) S and Close(S) U
//   - [MutConsumer]: imperative
//   - [BufConsumer], [MutBufConsumer]: add Flush; Close flushes
//     implicitly
//   - [EffConsumer]: fallible and asynchronous
//
// Reader and Writer are the batch counterparts of Consumer and Producer
// over caller-owned slices:
//
//   - [Reader], [MutReader], [BufReader], [MutBufReader], [EffReader]
//   - [Writer], [MutWriter], [BufWriter], [MutBufWriter], [EffWriter]
//   - [ReadResult], [WriteResult]: batch outcomes with counts
//
// # Direction Reversal
//
// Consumer is derived from Producer (and Reader from Writer) by
// reversing the arrow of the repeating operation: next: S -> (S, T) + U
// becomes push: (S, T) -> S. Reversing the terminal operation naively
// the same way would give close: U -> S, which traverses the sequence
// right to left; the terminal operation is therefore reversed a second
// time, yielding close: S -> U and preserving left-to-right temporal
// order on both sides. Applying the derivation twice round-trips to the
// original family, which the package's property tests witness on
// concrete instances.
//
// # Buffering
//
// Buffered interfaces subsume unbuffered ones: [UnbufferedProducer],
// [UnbufferedConsumer], [UnbufferedReader], [UnbufferedWriter] supply
// the lawful trivial defaults (Force = Next, Flush = identity), and
//
//   - [BufferConsumer] batches pushes into groups of n ([BufState],
//     [Buffered])
//   - [BufferProducer] reads up to n items ahead ([ReadAhead],
//     [Prefetch])
//   - [BufferReader] stages incoming batches
//
// add real batching. Two guarantees hold for every buffered variant:
// Close implies Flush, so ending a sequence never strands buffered
// items; and Force drains buffered items before the source is pulled,
// so a stalling source never traps them.
//
// # Error and Asynchrony Effects
//
// The Eff formulations apply both effects to every operation of a
// family at once, never selectively. A consumer's Push gains real
// expressiveness from explicit errors, since Push returns no
// continuation value to fold a failure into; the remaining operations
// follow for symmetry. The asynchronous effect is the outer layer and the
// fallible result the inner one: an operation takes a context and
// returns Either, so a failing source always surfaces as a resolved
// Left, never as an unresolved computation. [LiftProducer],
// [LiftConsumer], [LiftReader], [LiftWriter] wrap total variants into
// Eff ones that never fail.
//
// Exactly one kind of error exists: the unrecoverable E. A recoverable
// failure is an item, modeled as T = value + failure, not an E. After a
// Left, the state involved is unspecified; retry requires a snapshot of
// a prior state, which only the pure formulation can provide, since the
// imperative one destroys the prior state by mutation.
//
// # Ownership
//
// Push and Next transfer ownership of items; Read and Write only borrow
// caller-owned slices and copy what they transfer, so the caller may
// reuse or free the slice as soon as the call returns. States are
// single-owner at every point: no call may observe a state while
// another call on it is outstanding. [Owned] and [LinearProducer]
// enforce the single-use contract dynamically ([Own], [Owned.Take],
// [Owned.TryTake], [Owned.Discard]).
//
// # Canonical Instances
//
//   - [SliceProducer], [SliceConsumer]: the finite list, both directions
//   - [Count]: the infinite counter; terminal type [Never]
//   - [ChainProducer], [Chain], [ChainState]: heterogeneous
//     concatenation through the terminal continuation
//   - [SliceReader], [SliceWriter]: batch forms of the list instances
//   - [SinkReader], [SourceWriter]: byte bridges over io.Writer and
//     io.Reader with E = error
//
// # Transforms
//
//   - [MapProducer], [MapTail], [FilterProducer]: covariant over items
//     and terminals
//   - [MapConsumer]: contravariant over items
//   - [MutFromProducer], [ProducerFromMut], [MutFromConsumer],
//     [ConsumerFromMut], [MutFromReader], [MutFromWriter]: pure /
//     imperative adapters
//   - [ConsumerReader], [ProducerWriter]: per-item / batch adapters
//
// # Pumps
//
//   - [Copy], [CopyClose]: drain a producer into a consumer
//   - [CopyEff]: the fallible, asynchronous pump
//   - [CopyBatch], [CopyBatchEff]: pump a writer into a reader through
//     a caller buffer
//
// # Generator Bridge
//
// The pure formulation emulates coroutine-style suspend and resume
// without native generator support. Go has native generators in the
// iter package; the bridge keeps both worlds available:
//
//   - [Values]: pure producer → iter.Seq
//   - [Pulled], [PullProducer], [PullState]: iter.Pull → imperative
//     producer
//   - [PushAll]: iter.Seq → consumer
//
// # Example
//
//	var p seq.Producer[[]int, int, struct{}] = seq.SliceProducer[int]()
//	var c seq.Consumer[[]int, int, []int] = seq.SliceConsumer[int]()
//	_, out := seq.CopyClose(p, []int{1, 2, 3}, c, nil)
//	// out == []int{1, 2, 3}
package seq
