package bounded

import (
	"strings"
	"testing"

	"github.com/0x0FACED/go-dungen/pkg/logger"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAddUntilFull(t *testing.T) {
	l := New[int]("ints", 2, nil)

	require.NoError(t, l.Add(1, "first"))
	require.NoError(t, l.Add(2, "second"))

	err := l.Add(3, "third")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCapacityExceeded))

	var capErr *CapacityError
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, "ints", capErr.Collection)
	assert.Equal(t, "third", capErr.Site)
	assert.Equal(t, 2, capErr.Capacity)
	assert.Equal(t, []int{1, 2}, l.Items())
}

func TestListZeroCapacity(t *testing.T) {
	l := New[string]("empty", 0, nil)
	assert.True(t, errors.Is(l.Add("x", "zero"), ErrCapacityExceeded))
	assert.Equal(t, 0, l.Len())
}

func TestListWarnsOnce(t *testing.T) {
	log := logger.New()
	l := New[int]("ints", 8, log)

	for i := 0; i < 8; i++ {
		require.NoError(t, l.Add(i, "fill"))
	}
	assert.True(t, l.Warned())

	l.Reset()
	for i := 0; i < 8; i++ {
		require.NoError(t, l.Add(i, "refill"))
	}

	raw := log.Raw()
	assert.Equal(t, 1, strings.Count(raw, "75% capacity"))
	assert.Contains(t, raw, "fill")
}

func TestListWarningIsPerInstance(t *testing.T) {
	log := logger.New()
	a := New[int]("a", 5, log)
	b := New[int]("b", 5, log)
	for i := 0; i < 5; i++ {
		require.NoError(t, a.Add(i, "a"))
		require.NoError(t, b.Add(i, "b"))
	}
	assert.True(t, a.Warned())
	assert.True(t, b.Warned())
	assert.Equal(t, 2, strings.Count(log.Raw(), "75% capacity"))
}

func TestListPop(t *testing.T) {
	l := New[int]("stack", 3, nil)
	_, ok := l.Pop()
	assert.False(t, ok)

	require.NoError(t, l.Add(1, "push"))
	require.NoError(t, l.Add(2, "push"))
	v, ok := l.Pop()
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, l.Len())
}
