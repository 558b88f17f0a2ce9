package history

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Success(t *testing.T) {
	before := time.Now()
	e := New("13:17:01", "O\r\nRROO\r\nRRRO\r\nYYROOOOOOOO\r\nYYOO", "")

	_, err := uuid.Parse(e.ID)
	require.NoError(t, err)
	assert.Equal(t, "13:17:01", e.Input)
	assert.True(t, e.Succeeded())
	assert.False(t, e.CreatedAt.Before(before))
}

func TestNew_FailureDropsOutput(t *testing.T) {
	e := New("25:00:00", "ignored", "out_of_range")

	assert.False(t, e.Succeeded())
	assert.Empty(t, e.Output)
	assert.Equal(t, "out_of_range", e.ErrorKind)
}

func TestNew_UniqueIDs(t *testing.T) {
	a := New("00:00:00", "", "")
	b := New("00:00:00", "", "")
	assert.NotEqual(t, a.ID, b.ID)
}
