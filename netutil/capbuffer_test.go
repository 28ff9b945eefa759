package netutil_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sourcepin/sourcepin/netutil"
)

func Test_CappedBuffer_UnderLimit(t *testing.T) {
	buf := netutil.NewCappedBuffer(64)

	n, err := buf.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", buf.String())
	assert.False(t, buf.Truncated())
	assert.Equal(t, int64(5), buf.TotalWritten())
}

func Test_CappedBuffer_OverLimit(t *testing.T) {
	buf := netutil.NewCappedBuffer(8)

	n, err := buf.Write([]byte("0123456789abcdef"))
	require.NoError(t, err)
	assert.Equal(t, 16, n, "writer must report the full length even when discarding")
	assert.True(t, buf.Truncated())
	assert.Equal(t, int64(16), buf.TotalWritten())
	assert.True(t, strings.HasPrefix(buf.String(), "01234567"))
	assert.Contains(t, buf.String(), "truncated")
}

func Test_CappedBuffer_MultipleWrites(t *testing.T) {
	buf := netutil.NewCappedBuffer(6)

	for range 4 {
		_, err := buf.Write([]byte("abc"))
		require.NoError(t, err)
	}

	assert.True(t, buf.Truncated())
	assert.Equal(t, int64(12), buf.TotalWritten())
	assert.True(t, strings.HasPrefix(buf.String(), "abcabc"))
}
