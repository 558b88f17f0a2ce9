package clock

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_LogsRejectedInput(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	c := NewConverter(&log)

	_, err := c.Convert("10:mm:10")
	require.Error(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "10:mm:10", entry["input"])
	assert.Equal(t, "not_numeric", entry["kind"])
	assert.Equal(t, "minutes", entry["field"])
	assert.Equal(t, err.Error(), entry["message"])
}

func TestConverter_ValidInputLogsNothing(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	c := NewConverter(&log)

	out, err := c.Convert("13:17:01")
	require.NoError(t, err)
	assert.Equal(t, "O\r\nRROO\r\nRRRO\r\nYYROOOOOOOO\r\nYYOO", out)

	tm, err := c.Parse("24:00:00")
	require.NoError(t, err)
	assert.True(t, tm.IsEndOfDay())
	assert.Zero(t, buf.Len())
}

func TestConverter_ParseLogsWithoutField(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	_, err := NewConverter(&log).Parse("")
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"kind":"empty"`)
	assert.NotContains(t, buf.String(), `"field"`)
}

func TestConverter_NilLogger(t *testing.T) {
	var zero Converter
	_, err := zero.Convert("25:00:00")
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = NewConverter(nil).Convert("")
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestConverter_ConcurrentUse(t *testing.T) {
	var buf safeBuffer
	log := zerolog.New(&buf)
	c := NewConverter(&log)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				out, err := c.Convert("23:59:59")
				assert.NoError(t, err)
				assert.Equal(t, "O\r\nRRRR\r\nRRRO\r\nYYRYYRYYRYY\r\nYYYY", out)
				return
			}
			_, err := c.Convert("24:00:01")
			assert.ErrorIs(t, err, ErrMidnight)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 8, strings.Count(buf.String(), "\n"))
}

type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
