package words

// Set is a set of words keyed by their exact spelling.
type Set map[string]struct{}

// NewSet returns a set holding ws.
func NewSet(ws ...string) Set {
	s := make(Set, len(ws))
	for _, w := range ws {
		s[w] = struct{}{}
	}
	return s
}

// Add inserts w. It reports false if w was already present.
func (s Set) Add(w string) bool {
	if _, ok := s[w]; ok {
		return false
	}
	s[w] = struct{}{}
	return true
}

// Contains reports whether w is in the set.
func (s Set) Contains(w string) bool {
	_, ok := s[w]
	return ok
}

// Len returns the number of words in the set.
func (s Set) Len() int { return len(s) }
