// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package seq

import (
	"context"
	"io"
)

// Bridges to the standard library's byte streams. The correspondence
// crosses over: an io.Writer sits under a Reader (batches of caller
// bytes are consumed into it), and an io.Reader sits under a Writer
// (batches of caller-owned buffer are filled from it). The families are
// named for the direction items flow relative to the sequence, io for
// the direction relative to the process.
//
// The bridges open nothing themselves; they wrap whatever stream the
// caller already owns.

// sinkReader consumes byte batches into an io.Writer. The state is the
// destination; E = error.
type sinkReader struct{}

// Read implements EffReader. A ctx already done fails before the
// destination is touched. Short writes surface as their error; the
// count reported is what the destination accepted.
func (sinkReader) Read(ctx context.Context, s io.Writer, src []byte) Either[error, ReadResult[io.Writer]] {
	if err := ctx.Err(); err != nil {
		return Left[error, ReadResult[io.Writer]](err)
	}
	n, err := s.Write(src)
	if err != nil {
		return Left[error, ReadResult[io.Writer]](err)
	}
	return Right[error](ReadResult[io.Writer]{State: s, N: n})
}

// Flush implements EffReader, forwarding to the destination's Flush if
// it has one (bufio-style); identity otherwise.
func (sinkReader) Flush(ctx context.Context, s io.Writer) Either[error, io.Writer] {
	if err := ctx.Err(); err != nil {
		return Left[error, io.Writer](err)
	}
	if f, ok := s.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return Left[error, io.Writer](err)
		}
	}
	return Right[error](s)
}

// Close implements EffReader, flushing implicitly and closing the
// destination if it is an io.Closer. The terminal continuation is unit.
func (r sinkReader) Close(ctx context.Context, s io.Writer) Either[error, struct{}] {
	fr := r.Flush(ctx, s)
	if e, ok := fr.GetLeft(); ok {
		return Left[error, struct{}](e)
	}
	if c, ok := s.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return Left[error, struct{}](err)
		}
	}
	return Right[error](struct{}{})
}

// SinkReader creates a byte reader over io.Writer states: batches read
// from the caller's buffer are written to the underlying destination.
func SinkReader() sinkReader { return sinkReader{} }

// sourceWriter fills byte batches from an io.Reader. The state is the
// source; E = error.
type sourceWriter struct{}

// Write implements EffWriter. io.EOF is not an error but the end of the
// sequence: the outcome closes with unit, keeping any bytes delivered
// alongside the EOF.
func (sourceWriter) Write(ctx context.Context, s io.Reader, dst []byte) Either[error, WriteResult[io.Reader, struct{}]] {
	if err := ctx.Err(); err != nil {
		return Left[error, WriteResult[io.Reader, struct{}]](err)
	}
	n, err := s.Read(dst)
	if err == io.EOF {
		return Right[error](WriteResult[io.Reader, struct{}]{Tail: Closed[io.Reader](struct{}{}), N: n})
	}
	if err != nil {
		return Left[error, WriteResult[io.Reader, struct{}]](err)
	}
	return Right[error](WriteResult[io.Reader, struct{}]{Tail: Open[struct{}](s), N: n})
}

// Force implements EffWriter; the bridge buffers nothing, so Force is
// Write.
func (w sourceWriter) Force(ctx context.Context, s io.Reader, dst []byte) Either[error, WriteResult[io.Reader, struct{}]] {
	return w.Write(ctx, s, dst)
}

// SourceWriter creates a byte writer over io.Reader states: the
// caller's buffer is filled from the underlying source.
func SourceWriter() sourceWriter { return sourceWriter{} }
