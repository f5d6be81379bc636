// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/tls-pem-classifier/src/logger"
)

func TestCLILogger(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Printf",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewCLILogger()
				log.SetOutput(&buf)

				log.Printf("test message: %s", "hello")

				output := buf.String()
				assert.Contains(t, output, "test message: hello", "expected output to contain 'test message: hello'")
			},
		},
		{
			name: "Println",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewCLILogger()
				log.SetOutput(&buf)

				log.Println("test", "message")

				output := buf.String()
				assert.Contains(t, output, "test message", "expected output to contain 'test message'")
			},
		},
		{
			name: "SetOutput",
			testFunc: func(t *testing.T) {
				var buf1, buf2 bytes.Buffer
				log := logger.NewCLILogger()

				log.SetOutput(&buf1)
				log.Println("first")

				log.SetOutput(&buf2)
				log.Println("second")

				assert.Contains(t, buf1.String(), "first", "expected buf1 to contain 'first'")
				assert.Contains(t, buf2.String(), "second", "expected buf2 to contain 'second'")
				assert.NotContains(t, buf1.String(), "second", "buf1 should not contain 'second'")
			},
		},
		{
			name: "ConcurrentUsage",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewCLILogger()
				log.SetOutput(&buf)

				const numGoroutines = 100
				const messagesPerGoroutine = 10

				var wg sync.WaitGroup
				wg.Add(numGoroutines)

				for i := range numGoroutines {
					go func(id int) {
						defer wg.Done()
						for j := range messagesPerGoroutine {
							log.Printf("goroutine %d message %d", id, j)
						}
					}(i)
				}

				wg.Wait()

				output := buf.String()
				lines := strings.Split(strings.TrimSpace(output), "\n")

				expectedLines := numGoroutines * messagesPerGoroutine
				assert.Equal(t, expectedLines, len(lines), "expected %d log lines", expectedLines)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}

func TestJSONLogger(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Silent",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, true)

				log.Printf("test message: %s", "hello")
				log.Println("another message")

				assert.Equal(t, 0, buf.Len(), "expected no output in silent mode")
			},
		},
		{
			name: "Printf_JSON",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, false)

				log.Printf("test message: %s", "hello")

				output := buf.String()
				assert.Contains(t, output, "test message: hello", "expected output to contain 'test message: hello'")

				var logEntry map[string]any
				require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(output)), &logEntry), "failed to parse JSON output")

				assert.Equal(t, "info", logEntry["level"], "expected level 'info'")
				assert.Equal(t, "test message: hello", logEntry["message"], "expected message 'test message: hello'")
			},
		},
		{
			name: "Println_JSON",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, false)

				log.Println("test message")

				output := buf.String()
				require.NotEmpty(t, output, "expected output, got empty string")

				var logEntry map[string]any
				require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(output)), &logEntry), "failed to parse JSON output")

				assert.Equal(t, "info", logEntry["level"], "expected level 'info'")
				assert.Equal(t, "test message", logEntry["message"], "expected message 'test message'")
			},
		},
		{
			name: "SetOutput",
			testFunc: func(t *testing.T) {
				var buf1, buf2 bytes.Buffer
				log := logger.NewJSONLogger(&buf1, false)

				log.Println("first")

				log.SetOutput(&buf2)
				log.Println("second")

				assert.NotZero(t, buf1.Len(), "expected buf1 to have content")
				assert.NotZero(t, buf2.Len(), "expected buf2 to have content")
				assert.NotContains(t, buf1.String(), "second", "buf1 should not contain 'second'")
				assert.NotContains(t, buf2.String(), "first", "buf2 should not contain 'first'")
			},
		},
		{
			name: "SetOutput_Nil",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, false)

				log.Println("before")

				log.SetOutput(nil)
				log.Println("after")

				output := buf.String()
				assert.Contains(t, output, "before", "expected 'before' in output")
				assert.NotContains(t, output, "after", "should not contain 'after' after setting nil output")
			},
		},
		{
			name: "NilWriter",
			testFunc: func(t *testing.T) {
				log := logger.NewJSONLogger(nil, false)

				// Must not panic with a nil writer.
				log.Println("discarded")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}
