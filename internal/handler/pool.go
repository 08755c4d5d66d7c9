package handler

import (
	"bytes"
	"sync"
)

const (
	// Recipe and storage listings are the largest common payloads;
	// start buffers at 1KB so they rarely regrow.
	initialBufferSize = 1024
	// Buffers that grew past this are dropped instead of pooled.
	maxPooledBufferSize = 64 * 1024
)

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

// getBuffer retrieves a buffer from the pool
func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer resets the buffer and returns it to the pool
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
