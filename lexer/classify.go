package lexer

import (
	"unicode"
	"unicode/utf8"
)

// nextChar returns the character starting at in[i] along with its width in bytes.
// A well-formed multi-byte UTF-8 sequence is a single character. Any other byte stands for itself,
// so malformed input never swallows the bytes that follow it.
func nextChar(in []byte, i int) (c rune, width int) {
	b := in[i]

	// simple ASCII
	if b < utf8.RuneSelf {
		return rune(b), 1
	}

	// WARNING: [utf8.DecodeRune] returns width 1 along with [utf8.RuneError] for malformed input.
	c, width = utf8.DecodeRune(in[i:])
	if c == utf8.RuneError && width <= 1 {
		return rune(b), 1
	}

	return c, width
}

// extendedLetter returns the width of the well-formed multi-byte character at in[i] if it can
// start a word, or 0 otherwise.
func extendedLetter(in []byte, i int) int {
	if in[i] < utf8.RuneSelf {
		return 0
	}

	r, w := utf8.DecodeRune(in[i:])
	if r == utf8.RuneError && w <= 1 {
		return 0
	}

	if unicode.IsLetter(r) || unicode.IsMark(r) {
		return w
	}
	return 0
}

// extendedWordChar is like extendedLetter, but also accepts non-ASCII digits and numerals,
// which may appear inside a word.
func extendedWordChar(in []byte, i int) int {
	if w := extendedLetter(in, i); w > 0 {
		return w
	}

	if in[i] < utf8.RuneSelf {
		return 0
	}

	r, w := utf8.DecodeRune(in[i:])
	if r != utf8.RuneError && unicode.IsNumber(r) {
		return w
	}
	return 0
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// isASCIIWordChar reports whether b may continue a word: a letter, a digit, '_' or '-'.
func isASCIIWordChar(b byte) bool {
	return isASCIILetter(b) || isDigit(b) || b == '_' || b == '-'
}

// isBlank reports whether b is a space, a tab or a carriage return.
func isBlank(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r'
}

// isSpace reports whether b is blank or a newline.
func isSpace(b byte) bool {
	return isBlank(b) || b == '\n'
}
