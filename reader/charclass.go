package reader

// CharRange is an inclusive range of runes.
type CharRange struct {
	Lo, Hi rune
}

// CharClass is a set of rune ranges, sorted ascending by Lo. Membership
// checks stop as soon as a range starts past the candidate rune, so small
// tables behave close to a binary search.
type CharClass []CharRange

// Contains reports whether r belongs to the class.
func (c CharClass) Contains(r rune) bool {
	for _, rng := range c {
		if r < rng.Lo {
			break
		}
		if r <= rng.Hi {
			return true
		}
	}
	return false
}
