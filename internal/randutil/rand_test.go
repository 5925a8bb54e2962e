package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 16; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	assert.NotEqual(t, New(1).Uint64(), New(2).Uint64())
}

func TestShuffleKeepsElements(t *testing.T) {
	s := []int{1, 2, 3, 4, 5, 6, 7, 8}
	Shuffle(New(7), s)
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, s)

	again := []int{1, 2, 3, 4, 5, 6, 7, 8}
	Shuffle(New(7), again)
	assert.Equal(t, s, again)
}

func TestSeedOrClock(t *testing.T) {
	assert.Equal(t, int64(42), SeedOrClock(42))
	assert.NotZero(t, SeedOrClock(0))
}
