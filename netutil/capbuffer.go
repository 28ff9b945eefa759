package netutil

import "fmt"

// CappedBuffer is an io.Writer that retains at most Limit bytes and silently
// discards the rest. It never fails the write: overflowing captured output
// from a subprocess must not abort the operation that spawned it, the excess
// is simply not retained.
type CappedBuffer struct {
	buf   []byte
	limit int64
	total int64
}

// NewCappedBuffer creates a buffer retaining at most limit bytes.
func NewCappedBuffer(limit int64) *CappedBuffer {
	return &CappedBuffer{limit: limit}
}

// Write implements io.Writer. It always reports the full length as written.
func (b *CappedBuffer) Write(p []byte) (int, error) {
	n := len(p)
	b.total += int64(n)

	if remaining := b.limit - int64(len(b.buf)); remaining > 0 {
		if int64(len(p)) > remaining {
			p = p[:remaining]
		}
		b.buf = append(b.buf, p...)
	}

	return n, nil
}

// Truncated reports whether any bytes were discarded.
func (b *CappedBuffer) Truncated() bool {
	return b.total > int64(len(b.buf))
}

// TotalWritten returns the number of bytes offered to the buffer.
func (b *CappedBuffer) TotalWritten() int64 {
	return b.total
}

// String returns the retained bytes, with a marker when output was discarded.
func (b *CappedBuffer) String() string {
	if !b.Truncated() {
		return string(b.buf)
	}
	return fmt.Sprintf("%s\n[output truncated after %d bytes]", b.buf, b.limit)
}
