package wordgraph

import "unicode/utf8"

// Distance returns the Hamming distance between a and b measured in runes.
// Words of different length have no defined distance and return -1.
func Distance(a, b string) int {
	if utf8.RuneCountInString(a) != utf8.RuneCountInString(b) {
		return -1
	}
	d := 0
	rb := []rune(b)
	i := 0
	for _, ra := range a {
		if ra != rb[i] {
			d++
		}
		i++
	}
	return d
}

// Adjacent reports whether a and b are one substitution apart.
// A word is never adjacent to itself, and a string that is not valid UTF-8
// is adjacent to nothing.
func Adjacent(a, b string) bool {
	if len(a) == len(b) && isASCII(a) && isASCII(b) {
		return adjacentBytes(a, b)
	}
	if !utf8.ValidString(a) || !utf8.ValidString(b) {
		return false
	}
	return Distance(a, b) == 1
}

// adjacentBytes compares equal-length ASCII words, stopping at the second mismatch.
func adjacentBytes(a, b string) bool {
	diff := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			diff++
			if diff > 1 {
				return false
			}
		}
	}
	return diff == 1
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// ChangedPosition returns the rune index at which adjacent words a and b
// differ, or -1 if they are not adjacent.
func ChangedPosition(a, b string) int {
	if !Adjacent(a, b) {
		return -1
	}
	rb := []rune(b)
	i := 0
	for _, ra := range a {
		if ra != rb[i] {
			return i
		}
		i++
	}
	return -1
}
