// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBufferInterface verifies that bytebufferpool.ByteBuffer satisfies Buffer interface
func TestBufferInterface(t *testing.T) {
	tests := []struct {
		name  string
		setup func(buf Buffer)
		check func(t *testing.T, buf Buffer)
	}{
		{
			name: "Write byte slice",
			setup: func(buf Buffer) {
				buf.Write([]byte("hello"))
			},
			check: func(t *testing.T, buf Buffer) {
				assert.Equal(t, "hello", buf.String())
				assert.Equal(t, 5, buf.Len())
			},
		},
		{
			name: "WriteString",
			setup: func(buf Buffer) {
				buf.WriteString("test string")
			},
			check: func(t *testing.T, buf Buffer) {
				assert.Equal(t, "test string", buf.String())
			},
		},
		{
			name: "WriteByte",
			setup: func(buf Buffer) {
				buf.WriteByte('A')
			},
			check: func(t *testing.T, buf Buffer) {
				assert.Equal(t, "A", buf.String())
			},
		},
		{
			name: "Multiple operations",
			setup: func(buf Buffer) {
				buf.Write([]byte("hello"))
				buf.WriteString(" test")
				buf.WriteByte('!')
			},
			check: func(t *testing.T, buf Buffer) {
				expected := "hello test!"
				assert.Equal(t, expected, buf.String())
				assert.Equal(t, []byte(expected), buf.Bytes())
				assert.Equal(t, len(expected), buf.Len())
			},
		},
		{
			name: "Set byte slice",
			setup: func(buf Buffer) {
				buf.WriteString("initial")
				buf.Set([]byte("replaced"))
			},
			check: func(t *testing.T, buf Buffer) {
				assert.Equal(t, "replaced", buf.String())
			},
		},
		{
			name: "SetString",
			setup: func(buf Buffer) {
				buf.WriteString("initial")
				buf.SetString("new content")
			},
			check: func(t *testing.T, buf Buffer) {
				assert.Equal(t, "new content", buf.String())
			},
		},
		{
			name: "Reset clears buffer",
			setup: func(buf Buffer) {
				buf.WriteString("data to clear")
				buf.Reset()
			},
			check: func(t *testing.T, buf Buffer) {
				assert.Equal(t, 0, buf.Len(), "Reset() failed, buffer still contains data: %q", buf.Bytes())
			},
		},
		{
			name:  "Empty buffer",
			setup: func(buf Buffer) {},
			check: func(t *testing.T, buf Buffer) {
				assert.Equal(t, 0, buf.Len())
				assert.Equal(t, "", buf.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := Default.Get()
			defer func() {
				buf.Reset()
				Default.Put(buf)
			}()

			tt.setup(buf)
			tt.check(t, buf)
		})
	}
}

// TestBufferReadFrom verifies ReadFrom functionality
func TestBufferReadFrom(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantLen  int64
		wantData string
	}{
		{
			name:     "Small data",
			data:     "Hello, World!",
			wantLen:  13,
			wantData: "Hello, World!",
		},
		{
			name:     "Empty reader",
			data:     "",
			wantLen:  0,
			wantData: "",
		},
		{
			name:     "Large data (10KB)",
			data:     strings.Repeat("0123456789", 1024),
			wantLen:  10240,
			wantData: strings.Repeat("0123456789", 1024),
		},
		{
			name:     "Multiline data",
			data:     "Line 1\nLine 2\nLine 3\n",
			wantLen:  21,
			wantData: "Line 1\nLine 2\nLine 3\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := Default.Get()
			defer func() {
				buf.Reset()
				Default.Put(buf)
			}()

			reader := strings.NewReader(tt.data)
			n, err := buf.ReadFrom(reader)

			assert.NoError(t, err, "ReadFrom() should not return error")
			assert.Equal(t, tt.wantLen, n, "ReadFrom() read bytes")
			assert.Equal(t, tt.wantData, buf.String(), "ReadFrom() result")
		})
	}
}

// TestPoolGetPut verifies pool Get/Put operations
func TestPoolGetPut(t *testing.T) {
	buf := Default.Get()
	require.NotNil(t, buf, "Get() returned nil buffer")

	buf.WriteString("test data")
	assert.Equal(t, 9, buf.Len(), "WriteString() length")
	buf.Reset()
	assert.Equal(t, 0, buf.Len(), "Reset() failed")

	Default.Put(buf)
}

// TestPoolConcurrent verifies the pool is safe under concurrent Get/Put
func TestPoolConcurrent(t *testing.T) {
	const numGoroutines = 50

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := range numGoroutines {
		go func(id int) {
			defer wg.Done()

			buf := Default.Get()
			buf.WriteString(strings.Repeat("x", id+1))
			assert.Equal(t, id+1, buf.Len())

			buf.Reset()
			Default.Put(buf)
		}(i)
	}

	wg.Wait()
}
