package letters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBag(t *testing.T) {
	b := bag()
	assert.Len(t, b, 98)

	counts := map[byte]int{}
	for _, c := range b {
		counts[c]++
	}
	assert.Equal(t, 12, counts['E'])
	assert.Equal(t, 1, counts['Q'])
	assert.Len(t, counts, 26)
}

func TestDraw(t *testing.T) {
	t.Run("size and alphabet", func(t *testing.T) {
		got := Draw(DefaultCount, NewRand(42))
		assert.Len(t, got, DefaultCount)
		for _, c := range got {
			assert.True(t, c >= 'A' && c <= 'Z', "letter %q", c)
		}
	})

	t.Run("same seed same pool", func(t *testing.T) {
		assert.Equal(t, Draw(12, NewRand(7)), Draw(12, NewRand(7)))
	})

	t.Run("respects tile counts", func(t *testing.T) {
		for seed := uint64(0); seed < 50; seed++ {
			counts := map[rune]int{}
			for _, c := range Draw(12, NewRand(seed)) {
				counts[c]++
			}
			for c, n := range counts {
				assert.LessOrEqual(t, n, distribution[c-'A'], "seed %d letter %q", seed, c)
			}
		}
	})

	t.Run("clamped", func(t *testing.T) {
		assert.Len(t, Draw(500, NewRand(1)), 98)
		assert.Equal(t, "", Draw(0, NewRand(1)))
	})
}
