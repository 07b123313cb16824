package solver

import (
	"io"
	"sync"
)

const (
	// BufferSize is the per-goroutine staging buffer
	BufferSize = 4096
	// MaxLineLength bounds one report line; a buffer is flushed once fewer
	// than this many bytes remain
	MaxLineLength = 300
)

// Output serializes writes from many goroutines onto one writer. Each Write
// lands as a unit, so lines from different goroutines never interleave.
type Output struct {
	mu  sync.Mutex
	w   io.Writer
	err error
}

func NewOutput(w io.Writer) *Output {
	return &Output{w: w}
}

// Write forwards p unless an earlier write failed; the first error sticks.
func (o *Output) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.err != nil {
		return 0, o.err
	}
	n, err := o.w.Write(p)
	o.err = err
	return n, err
}

// lineBuffer accumulates report lines and flushes to an Output in chunks
type lineBuffer struct {
	out *Output
	buf []byte
}

func newLineBuffer(out *Output) *lineBuffer {
	return &lineBuffer{out: out, buf: make([]byte, 0, BufferSize)}
}

// reserve flushes when the next line might not fit
func (b *lineBuffer) reserve() error {
	if len(b.buf) > BufferSize-MaxLineLength {
		return b.flush()
	}
	return nil
}

func (b *lineBuffer) flush() error {
	if len(b.buf) == 0 {
		return nil
	}
	_, err := b.out.Write(b.buf)
	b.buf = b.buf[:0]
	return err
}
