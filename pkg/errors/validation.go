package errors

import "unicode/utf8"

// MaxWordLength bounds the length of begin and end words. Longer words are
// rejected before any index is built.
const MaxWordLength = 64

// ValidateWord checks that word is a non-empty run of lowercase ASCII letters.
// The solver mutates words over the alphabet a..z only, so any other byte could
// never take part in a transformation.
func ValidateWord(word string) error {
	if word == "" {
		return New(ErrCodeInvalidInput, "word cannot be empty")
	}
	if len(word) > MaxWordLength {
		return New(ErrCodeInvalidInput, "word too long (max %d characters)", MaxWordLength)
	}
	for i := 0; i < len(word); i++ {
		if c := word[i]; c < 'a' || c > 'z' {
			r, _ := utf8.DecodeRuneInString(word[i:])
			return New(ErrCodeInvalidWord, "word %q contains invalid character %q (want a-z)", word, r)
		}
	}
	return nil
}

// ValidatePair validates begin and end and checks they have equal length.
func ValidatePair(begin, end string) error {
	if err := ValidateWord(begin); err != nil {
		return err
	}
	if err := ValidateWord(end); err != nil {
		return err
	}
	if len(begin) != len(end) {
		return New(ErrCodeLengthMismatch, "begin %q has length %d but end %q has length %d",
			begin, len(begin), end, len(end))
	}
	return nil
}

// ValidateLimit rejects negative ceilings. Zero means unlimited.
func ValidateLimit(name string, v int) error {
	if v < 0 {
		return New(ErrCodeInvalidInput, "%s must not be negative (got %d)", name, v)
	}
	return nil
}
