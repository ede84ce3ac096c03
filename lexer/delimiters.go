package lexer

import (
	"fmt"
	"strings"
)

const (
	DefaultEscape    = '\\'
	DefaultDelimiter = '"'

	// DelimiterAllowList holds every character which may be used as the string delimiter.
	DelimiterAllowList = "\"~'`!@%&*=:;<>?/|.\\"

	// defaultDelimSpec is the escape/delimiter pair in effect at the start of every box design.
	defaultDelimSpec = "\\\""

	recommendedDelimiters = "\" ~ ' ` ! @ % & * = : ; < > ? / | . \\"
)

// delimiters is the registry of the two characters a string is scanned with.
type delimiters struct {
	escape rune
	delim  rune
}

func defaultDelimiters() delimiters {
	return delimiters{escape: DefaultEscape, delim: DefaultDelimiter}
}

// change validates spec and, on success, makes spec[0] the escape character and spec[1] the delimiter.
// The registry is left untouched when an error is returned.
func (d *delimiters) change(spec string) error {
	in := []byte(spec)

	// counting at most 3 characters is enough to tell that the spec is too long
	var chars [3]rune
	n := 0

	for i := 0; i < len(in) && n < len(chars); n++ {
		c, w := nextChar(in, i)
		chars[n] = c
		i += w
	}

	if n != 2 {
		return NewConfigError(IssueInvalidDelimSpec,
			fmt.Errorf("delimiter specification must be exactly two characters, got %q", spec))
	}

	if chars[0] == chars[1] {
		return NewConfigError(IssueInvalidDelimSpec,
			fmt.Errorf("escape and delimiter characters must differ, got %q", spec))
	}

	if !strings.ContainsRune(DelimiterAllowList, chars[1]) {
		return NewConfigError(IssueInvalidDelimSpec,
			fmt.Errorf("invalid string delimiter %q in %q", chars[1], spec))
	}

	d.escape = chars[0]
	d.delim = chars[1]
	return nil
}

// ChangeDelimiters sets the escape character and the string delimiter from a two-character spec,
// e.g. "\\'" for a backslash escape and single quote strings.
//
// The spec must consist of exactly two different characters and the second one must be listed in
// [DelimiterAllowList]. On failure a diagnostic naming the violated constraint is reported, the
// current delimiters stay in effect and a [*ConfigError] is returned.
func (s *Session) ChangeDelimiters(spec string) error {
	err := s.delims.change(spec)
	if err != nil {
		s.report(Diagnostic{
			Issue:       IssueInvalidDelimSpec,
			Pos:         s.pos,
			Text:        spec,
			Description: fmt.Sprintf("%v (recommended delimiters: %s)", err, recommendedDelimiters),
		})
	}

	return err
}

// Delimiters returns the current escape character and string delimiter.
func (s *Session) Delimiters() (escape, delim rune) {
	return s.delims.escape, s.delims.delim
}

// resetDelimiters restores the default pair. It cannot fail.
func (s *Session) resetDelimiters() {
	if err := s.ChangeDelimiters(defaultDelimSpec); err != nil {
		panic(err)
	}
}
