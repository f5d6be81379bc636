// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"io"

	"github.com/valyala/bytebufferpool"
)

// Buffer defines the interface for a reusable byte buffer.
// It abstracts the [bytebufferpool.ByteBuffer] type to avoid direct dependencies.
type Buffer interface {
	Write(p []byte) (int, error)
	WriteString(s string) (int, error)
	WriteByte(c byte) error
	ReadFrom(r io.Reader) (int64, error)
	Bytes() []byte
	String() string
	Len() int
	Set(p []byte)
	SetString(s string)
	Reset()
}

// Pool defines the interface for buffer pooling.
// It abstracts the [bytebufferpool.Pool] type to avoid direct dependencies.
//
// Pool implementations must be safe for concurrent use by multiple goroutines.
type Pool interface {
	Get() Buffer
	Put(b Buffer)
}

// pool wraps [bytebufferpool.Pool] to implement Pool interface.
type pool struct{ p *bytebufferpool.Pool }

// Get returns a buffer from the pool.
func (p *pool) Get() Buffer { return p.p.Get() }

// Put returns a buffer to the pool.
func (p *pool) Put(b Buffer) {
	if buf, ok := b.(*bytebufferpool.ByteBuffer); ok {
		p.p.Put(buf)
	}
}

// Default is the default buffer pool used for efficient memory reuse in
// I/O operations such as slurping PEM files and assembling sorted
// output bundles.
//
// Example usage for reading a file:
//
//	// Get a buffer from the pool
//	buf := gc.Default.Get()
//
//	defer func() {
//		buf.Reset()         // Reset the buffer to prevent data leaks
//		gc.Default.Put(buf) // Return the buffer to the pool for reuse
//	}()
//
//	file, err := os.Open("bundle.pem")
//	if err != nil {
//		return nil, fmt.Errorf("error opening file: %w", err)
//	}
//	defer file.Close()
//
//	if _, err := buf.ReadFrom(file); err != nil {
//		return nil, fmt.Errorf("error reading file: %w", err)
//	}
//
//	// Process the file contents from the buffer. Copy the bytes out
//	// before returning the buffer if they must outlive the pool slot.
//	objects := parser.ParseBytes(buf.Bytes())
//
// Callers that hold the buffer only for the duration of a single parse
// or render keep allocation pressure flat even when classifying many
// bundles in sequence.
var Default Pool = &pool{p: &bytebufferpool.Pool{}}
