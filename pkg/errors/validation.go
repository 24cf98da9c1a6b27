package errors

import (
	"unicode"
	"unicode/utf8"
)

// MaxWordLength bounds the length of a query word in runes.
const MaxWordLength = 64

// ValidateWord checks that word can be used as a ladder endpoint.
//
// Validation rules:
//   - No empty words
//   - Valid UTF-8
//   - No whitespace or control characters
//   - At most MaxWordLength runes
//
// Words of different length are valid queries; they simply have no ladder.
func ValidateWord(word string) error {
	if word == "" {
		return New(ErrCodeInvalidWord, "word cannot be empty")
	}
	if !utf8.ValidString(word) {
		return New(ErrCodeInvalidWord, "word %q is not valid UTF-8", word)
	}
	if n := utf8.RuneCountInString(word); n > MaxWordLength {
		return New(ErrCodeInvalidWord, "word too long (%d runes, max %d)", n, MaxWordLength)
	}
	for _, r := range word {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidWord, "word %q contains whitespace or control characters", word)
		}
	}
	return nil
}

// ValidatePath checks a user-supplied file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}
