package game

// Score returns the points for a word of the given length.
// A word as long as the pool earns Bonus on top of its length.
func Score(wordLength, lenMax int) int {
	if wordLength == lenMax {
		return wordLength + Bonus
	}
	return wordLength
}
