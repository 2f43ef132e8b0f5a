// internal/letters/letters.go
//
// Random letter pools for games started without --lett.
//
// Letters are drawn without replacement from a 98-tile bag that follows the
// usual English tile distribution (no blanks), so pools lean towards common
// letters and rarely hold more than one J, Q, X or Z.

package letters

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"
)

// DefaultCount is the pool size used when none is requested.
const DefaultCount = 7

// distribution is the number of tiles per letter.
var distribution = [26]int{
	9, 2, 2, 4, 12, 2, 3, 2, 9, 1, 1, 4, 2, // A–M
	6, 8, 2, 1, 6, 4, 6, 4, 2, 2, 1, 2, 1, // N–Z
}

// bag returns every tile in letter order.
func bag() []byte {
	var b []byte
	for i, n := range distribution {
		for ; n > 0; n-- {
			b = append(b, byte('A'+i))
		}
	}
	return b
}

// Draw returns n uppercase letters drawn from the bag using r.
// n is clamped to the bag size.
func Draw(n int, r *mrand.Rand) string {
	tiles := bag()
	if n > len(tiles) {
		n = len(tiles)
	}
	if n <= 0 {
		return ""
	}

	// Partial Fisher–Yates: the first n slots end up as the draw.
	for i := 0; i < n; i++ {
		j := i + r.IntN(len(tiles)-i)
		tiles[i], tiles[j] = tiles[j], tiles[i]
	}
	return string(tiles[:n])
}

// NewRand returns a generator seeded with seed.
func NewRand(seed uint64) *mrand.Rand {
	return mrand.New(mrand.NewPCG(seed, seed>>32|seed<<32))
}

// RandomSeed returns a seed from crypto/rand.
func RandomSeed() uint64 {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return binary.BigEndian.Uint64(b[:])
}
