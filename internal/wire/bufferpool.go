package wire

import "sync"

var bufPool = sync.Pool{New: func() any { b := make([]byte, 0, 256); return &b }}

// GetBuffer returns a pooled, zero-length byte slice.
func GetBuffer() *[]byte {
	p := bufPool.Get().(*[]byte)
	*p = (*p)[:0]
	return p
}

// PutBuffer returns a buffer obtained from GetBuffer to the pool.
func PutBuffer(p *[]byte) { bufPool.Put(p) }
