// Package group classifies characters and finds character-group boundaries
// for word-style cursor navigation.
//
// A character group is a maximal run of characters sharing a Class. The
// default Whitespace classifier only separates whitespace from everything
// else, so "foo.bar baz" has the groups "foo.bar", " " and "baz".
// The Punctuation classifier additionally splits punctuation from letters
// and digits.
package group

import (
	"fmt"
	"unicode"
)

// Class is the category a character belongs to for navigation.
type Class uint8

const (
	// Whitespace is any Unicode space character.
	Whitespace Class = iota
	// Word is letters and digits, and everything else under the
	// Whitespace classifier.
	Word
	// Punctuation is non-word, non-space characters under the
	// Punctuation classifier.
	Punctuation
)

// String returns a string representation of the class.
func (c Class) String() string {
	switch c {
	case Whitespace:
		return "whitespace"
	case Word:
		return "word"
	case Punctuation:
		return "punctuation"
	default:
		return "unknown"
	}
}

// Classifier maps a character to its class.
type Classifier func(r rune) Class

// ByWhitespace is the default two-class classifier: whitespace versus
// everything else.
func ByWhitespace(r rune) Class {
	if unicode.IsSpace(r) {
		return Whitespace
	}
	return Word
}

// ByPunctuation is the three-class classifier: whitespace, word characters
// (letters, digits and '_') and punctuation.
func ByPunctuation(r rune) Class {
	switch {
	case unicode.IsSpace(r):
		return Whitespace
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
		return Word
	default:
		return Punctuation
	}
}

// Mode names a classifier in configuration.
type Mode string

const (
	// ModeWhitespace selects ByWhitespace.
	ModeWhitespace Mode = "whitespace"
	// ModePunctuation selects ByPunctuation.
	ModePunctuation Mode = "punctuation"
)

// ClassifierFor returns the classifier for a mode. The empty mode selects
// ByWhitespace.
func ClassifierFor(m Mode) (Classifier, error) {
	switch m {
	case "", ModeWhitespace:
		return ByWhitespace, nil
	case ModePunctuation:
		return ByPunctuation, nil
	default:
		return nil, fmt.Errorf("unknown word grouping %q", string(m))
	}
}
