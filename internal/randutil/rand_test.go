package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	t.Parallel()

	a, b := New(42), New(42)
	for range 16 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestDeriveSeparatesStreams(t *testing.T) {
	t.Parallel()

	seen := make(map[int64]bool)
	for i := range 64 {
		s := Derive(7, i)
		assert.False(t, seen[s], "stream %d collides", i)
		seen[s] = true
	}
	assert.Equal(t, Derive(7, 3), Derive(7, 3))
	assert.NotEqual(t, Derive(7, 3), Derive(8, 3))
}
