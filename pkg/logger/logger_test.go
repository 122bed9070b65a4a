//go:build unit

package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoopLogger(t *testing.T) {
	logger := NewNoopLogger()

	// This should not panic or produce any output
	logger.Logf("test message")
	logger.Warnf("test warning with args: %s", "value")
}

func TestDefaultLogger_Logf(t *testing.T) {
	var buf bytes.Buffer
	logger := NewDefaultLogger(&buf, false)

	logger.Logf("expanding %s", "root/**")

	out := buf.String()
	assert.Contains(t, out, "level=info")
	assert.Contains(t, out, `msg="expanding root/**"`)
}

func TestDefaultLogger_Warnf(t *testing.T) {
	var buf bytes.Buffer
	logger := NewDefaultLogger(&buf, false)

	logger.Warnf("cannot read %s", "/root/secret")

	out := buf.String()
	assert.Contains(t, out, "level=warn")
	assert.Contains(t, out, `msg="cannot read /root/secret"`)
}

func TestDefaultLogger_Quiet(t *testing.T) {
	var buf bytes.Buffer
	logger := NewDefaultLogger(&buf, true)

	logger.Logf("info message")
	logger.Warnf("warn message")

	assert.Empty(t, buf.String())
}

func TestDefaultLogger_ThreadSafety(t *testing.T) {
	var buf bytes.Buffer
	logger := NewDefaultLogger(&buf, false)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Logf("concurrent message from goroutine %d", id)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 10)
}
