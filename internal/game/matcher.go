package game

// IsFormable reports whether word can be spelled from the letters in pool.
// Comparison ignores case. Each pool letter may be used once, so a word that
// repeats a letter needs that letter repeated in the pool.
func IsFormable(word, pool string) bool {
	// Remaining pool letters, A–Z.
	var counts [26]int
	for i := 0; i < len(pool); i++ {
		if j := idx(pool[i]); j >= 0 {
			counts[j]++
		}
	}

	for i := 0; i < len(word); i++ {
		j := idx(word[i])
		if j < 0 || counts[j] == 0 {
			return false
		}
		counts[j]--
	}
	return true
}

// idx maps an ASCII letter of either case to 0..25, anything else to -1.
func idx(c byte) int {
	switch {
	case c >= 'A' && c <= 'Z':
		return int(c - 'A')
	case c >= 'a' && c <= 'z':
		return int(c - 'a')
	}
	return -1
}
