package lexer

import (
	"bytes"
)

// matcher returns the number of bytes matched at in[i], or 0 if there is no match.
type matcher func(in []byte, i int) int

const bom = "\xEF\xBB\xBF"

// matchWords matches the longest of the given words, ignoring ASCII case.
func matchWords(words ...string) matcher {
	return func(in []byte, i int) int {
		longest := 0
		for _, w := range words {
			if len(w) > longest && hasPrefixFold(in[i:], w) {
				longest = len(w)
			}
		}
		return longest
	}
}

// matchExact matches seq byte by byte.
func matchExact(seq string) matcher {
	return func(in []byte, i int) int {
		if bytes.HasPrefix(in[i:], []byte(seq)) {
			return len(seq)
		}
		return 0
	}
}

// matchOneOf matches a single byte from the set.
func matchOneOf(set string) matcher {
	return func(in []byte, i int) int {
		if bytes.IndexByte([]byte(set), in[i]) >= 0 {
			return 1
		}
		return 0
	}
}

func hasPrefixFold(in []byte, word string) bool {
	return len(in) >= len(word) && bytes.EqualFold(in[:len(word)], []byte(word))
}

// matchSpace matches a run of blanks and newlines.
func matchSpace(in []byte, i int) int {
	j := i
	for j < len(in) && isSpace(in[j]) {
		j++
	}
	return j - i
}

// matchBlank matches a run of blanks, stopping at the newline.
func matchBlank(in []byte, i int) int {
	j := i
	for j < len(in) && isBlank(in[j]) {
		j++
	}
	return j - i
}

// matchNewline matches "\n" or "\r\n".
func matchNewline(in []byte, i int) int {
	switch {
	case in[i] == '\n':
		return 1
	case in[i] == '\r' && i+1 < len(in) && in[i+1] == '\n':
		return 2
	}
	return 0
}

// matchRestOfLine matches everything up to, not including, the next newline.
func matchRestOfLine(in []byte, i int) int {
	n := bytes.IndexByte(in[i:], '\n')
	if n == -1 {
		return len(in) - i
	}
	return n
}

// matchLineContent is like matchRestOfLine, but leaves out the carriage return of a CRLF line end.
func matchLineContent(in []byte, i int) int {
	n := matchRestOfLine(in, i)
	if n > 0 && in[i+n-1] == '\r' {
		n--
	}
	return n
}

// matchComment matches '#' up to the end of the line.
func matchComment(in []byte, i int) int {
	if in[i] != '#' {
		return 0
	}
	return matchRestOfLine(in, i)
}

// matchNonBlank matches a run of anything but blanks and newlines.
func matchNonBlank(in []byte, i int) int {
	j := i
	for j < len(in) && !isSpace(in[j]) {
		j++
	}
	return j - i
}

// matchASCIIID matches an ASCII letter followed by ASCII letters, digits, '_' or '-'.
func matchASCIIID(in []byte, i int) int {
	if !isASCIILetter(in[i]) {
		return 0
	}

	j := i + 1
	for j < len(in) && isASCIIWordChar(in[j]) {
		j++
	}
	return j - i
}

// matchWord matches a letter, which may be a multi-byte character, followed by letters, digits,
// '_' or '-'.
func matchWord(in []byte, i int) int {
	var j int

	switch {
	case isASCIILetter(in[i]):
		j = i + 1
	default:
		w := extendedLetter(in, i)
		if w == 0 {
			return 0
		}
		j = i + w
	}

	for j < len(in) {
		if isASCIIWordChar(in[j]) {
			j++
			continue
		}

		w := extendedWordChar(in, j)
		if w == 0 {
			break
		}
		j += w
	}

	return j - i
}

// matchNumber matches an optionally signed run of decimal digits.
func matchNumber(in []byte, i int) int {
	j := i
	if in[j] == '+' || in[j] == '-' {
		j++
	}

	digits := j
	for j < len(in) && isDigit(in[j]) {
		j++
	}

	if j == digits {
		return 0
	}
	return j - i
}

// matchChar matches a single character, which is a whole code point for well-formed UTF-8.
func matchChar(in []byte, i int) int {
	_, w := nextChar(in, i)
	return w
}
