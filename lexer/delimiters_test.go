package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChangeDelimiters_Valid(t *testing.T) {
	testCases := []struct {
		name       string
		spec       string
		wantEscape rune
		wantDelim  rune
	}{
		{name: "Default", spec: `\"`, wantEscape: '\\', wantDelim: '"'},
		{name: "SingleQuote", spec: `\'`, wantEscape: '\\', wantDelim: '\''},
		{name: "BackslashDelimiter", spec: `?\`, wantEscape: '?', wantDelim: '\\'},
		{name: "LetterEscape", spec: "x|", wantEscape: 'x', wantDelim: '|'},
		{name: "MultiByteEscape", spec: "ß~", wantEscape: 'ß', wantDelim: '~'},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, rec := newTestSession(t, "")

			require.NoError(t, s.ChangeDelimiters(tc.spec))

			esc, del := s.Delimiters()
			require.Equal(t, tc.wantEscape, esc)
			require.Equal(t, tc.wantDelim, del)
			require.Empty(t, rec.list)
		})
	}
}

func TestChangeDelimiters_AllowList(t *testing.T) {
	for _, d := range DelimiterAllowList {
		escape := "^"
		s, _ := newTestSession(t, "")
		require.NoError(t, s.ChangeDelimiters(escape+string(d)), "delimiter %q", d)
	}
}

func TestChangeDelimiters_Invalid(t *testing.T) {
	testCases := []struct {
		name     string
		spec     string
		wantDesc string
	}{
		{name: "Empty", spec: "", wantDesc: "exactly two characters"},
		{name: "TooShort", spec: "'", wantDesc: "exactly two characters"},
		{name: "TooLong", spec: `\"'`, wantDesc: "exactly two characters"},
		{name: "Equal", spec: "''", wantDesc: "must differ"},
		{name: "LetterDelimiter", spec: `\a`, wantDesc: "invalid string delimiter"},
		{name: "HashDelimiter", spec: `\#`, wantDesc: "invalid string delimiter"},
		{name: "MultiByteDelimiter", spec: `\§`, wantDesc: "invalid string delimiter"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, rec := newTestSession(t, "")
			require.NoError(t, s.ChangeDelimiters("?'"))

			err := s.ChangeDelimiters(tc.spec)
			require.Error(t, err)

			var ce *ConfigError
			require.ErrorAs(t, err, &ce)
			require.Equal(t, IssueInvalidDelimSpec, ce.Issue)
			require.Contains(t, err.Error(), tc.wantDesc)

			// registry unchanged
			esc, del := s.Delimiters()
			require.Equal(t, '?', esc)
			require.Equal(t, '\'', del)

			require.Len(t, rec.list, 1)
			require.Equal(t, IssueInvalidDelimSpec, rec.list[0].Issue)
			require.Equal(t, tc.spec, rec.list[0].Text)
			require.Contains(t, rec.list[0].Description, recommendedDelimiters)
		})
	}
}
