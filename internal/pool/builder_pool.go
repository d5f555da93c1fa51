package pool

import "sync"

// maxPooledCap bounds the capacity of builders returned to the pool so a
// single huge row does not pin memory for the rest of the run.
const maxPooledCap = 64 * 1024

// StringBuilder accumulates bytes into a reusable buffer. Reset keeps the
// capacity, and String copies, so a returned string never aliases a pooled buffer.
type StringBuilder struct {
	buf []byte
}

// WriteString appends s to the builder
func (sb *StringBuilder) WriteString(s string) {
	sb.buf = append(sb.buf, s...)
}

// WriteByte appends c to the builder
func (sb *StringBuilder) WriteByte(c byte) error {
	sb.buf = append(sb.buf, c)
	return nil
}

// String returns a copy of the accumulated bytes
func (sb *StringBuilder) String() string {
	return string(sb.buf)
}

// Len returns the number of accumulated bytes
func (sb *StringBuilder) Len() int {
	return len(sb.buf)
}

// Cap returns the capacity of the underlying buffer
func (sb *StringBuilder) Cap() int {
	return cap(sb.buf)
}

// Reset empties the builder but keeps its capacity
func (sb *StringBuilder) Reset() {
	sb.buf = sb.buf[:0]
}

// StringBuilderPool implements a pool of StringBuilder for efficient string building
type StringBuilderPool struct {
	pool sync.Pool
}

// NewStringBuilderPool creates a new StringBuilder pool
func NewStringBuilderPool() *StringBuilderPool {
	return &StringBuilderPool{
		pool: sync.Pool{
			New: func() interface{} {
				return new(StringBuilder)
			},
		},
	}
}

// Get retrieves an empty builder from the pool or creates a new one if none are available
func (p *StringBuilderPool) Get() *StringBuilder {
	return p.pool.Get().(*StringBuilder)
}

// Put resets the builder and returns it to the pool for reuse
func (p *StringBuilderPool) Put(sb *StringBuilder) {
	if sb.Cap() > maxPooledCap {
		return
	}
	sb.Reset()
	p.pool.Put(sb)
}

// Join concatenates parts with sep using a pooled builder.
func (p *StringBuilderPool) Join(parts []string, sep string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}
	sb := p.Get()
	defer p.Put(sb)
	for i, part := range parts {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(part)
	}
	return sb.String()
}
