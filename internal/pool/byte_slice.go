// Package pool recycles the byte buffers the scanner assembles text runs
// into. Buffers handed back via Put are reset to zero length but keep their
// capacity.
package pool

import "sync"

const defaultCapacity = 64

// ByteSlicePool hands out zero-length byte slices with a minimum capacity.
type ByteSlicePool struct {
	p sync.Pool
}

var byteSlice = &ByteSlicePool{
	p: sync.Pool{
		New: func() interface{} {
			b := make([]byte, 0, defaultCapacity)
			return &b
		},
	},
}

// ByteSlice returns the shared process-wide pool.
func ByteSlice() *ByteSlicePool {
	return byteSlice
}

// Get returns an empty slice with at least the default capacity.
func (p *ByteSlicePool) Get() []byte {
	return p.GetCapacity(defaultCapacity)
}

// GetCapacity returns an empty slice with at least n bytes of capacity.
func (p *ByteSlicePool) GetCapacity(n int) []byte {
	b := *(p.p.Get().(*[]byte))
	if cap(b) < n {
		b = make([]byte, 0, n)
	}
	return b[:0]
}

// Put returns a slice to the pool. The caller must not use b afterwards.
func (p *ByteSlicePool) Put(b []byte) {
	b = b[:0]
	p.p.Put(&b)
}
