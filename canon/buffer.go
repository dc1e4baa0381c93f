package canon

// Buffer is an append-only byte accumulator used as the canonicalization target.
// The zero value is an empty buffer ready to use.
type Buffer struct {
	buf []byte
}

// NewBuffer returns a buffer with capacity for n bytes.
func NewBuffer(n int) *Buffer { return &Buffer{buf: make([]byte, 0, n)} }

// Push appends ch.
func (b *Buffer) Push(ch byte) { b.buf = append(b.buf, ch) }

// Append appends p.
func (b *Buffer) Append(p []byte) { b.buf = append(b.buf, p...) }

// AppendString appends s.
func (b *Buffer) AppendString(s string) { b.buf = append(b.buf, s...) }

// Write implements [io.Writer]. It never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// WriteString implements [io.StringWriter]. It never fails.
func (b *Buffer) WriteString(s string) (int, error) {
	b.buf = append(b.buf, s...)
	return len(s), nil
}

// Len returns the number of written bytes.
func (b *Buffer) Len() int { return len(b.buf) }

// At returns the byte at i.
func (b *Buffer) At(i int) byte { return b.buf[i] }

// Truncate shrinks the buffer to n bytes. Growing is not allowed.
func (b *Buffer) Truncate(n int) {
	if n < 0 || n > len(b.buf) {
		panic("canon: Buffer.Truncate out of range")
	}
	b.buf = b.buf[:n]
}

// Reset empties the buffer, keeping its storage.
func (b *Buffer) Reset() { b.buf = b.buf[:0] }

// Bytes returns the written bytes. The slice aliases the buffer storage
// and is valid until the next modification.
func (b *Buffer) Bytes() []byte { return b.buf }

// String returns a copy of the written bytes as a string.
func (b *Buffer) String() string { return string(b.buf) }
