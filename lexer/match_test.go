package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextChar(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		wantChar  rune
		wantWidth int
	}{
		{name: "ASCII", input: "a", wantChar: 'a', wantWidth: 1},
		{name: "TwoBytes", input: "ü", wantChar: 'ü', wantWidth: 2},
		{name: "ThreeBytes", input: "╔x", wantChar: '╔', wantWidth: 3},
		{name: "FourBytes", input: "😀", wantChar: '😀', wantWidth: 4},
		{name: "InvalidByte", input: "\xfcx", wantChar: 0xfc, wantWidth: 1},
		{name: "TruncatedSequence", input: "\xe2\x95", wantChar: 0xe2, wantWidth: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, w := nextChar([]byte(tc.input), 0)
			require.Equal(t, tc.wantChar, c)
			require.Equal(t, tc.wantWidth, w)
		})
	}
}

func TestMatchers(t *testing.T) {
	testCases := []struct {
		name  string
		match matcher
		input string
		want  int
	}{
		{name: "WordASCII", match: matchWord, input: "abc def", want: 3},
		{name: "WordUmlauts", match: matchWord, input: "äöü-ß_1 x", want: 11},
		{name: "WordStopsAtSymbol", match: matchWord, input: "ab€", want: 2},
		{name: "WordNoDigitStart", match: matchWord, input: "1ab", want: 0},
		{name: "WordNoInvalidStart", match: matchWord, input: "\xc3x", want: 0},
		{name: "ASCIIIDStopsAtUmlaut", match: matchASCIIID, input: "abä", want: 2},
		{name: "ASCIIIDDash", match: matchASCIIID, input: "c-cmt,", want: 5},
		{name: "NumberSigned", match: matchNumber, input: "-42x", want: 3},
		{name: "NumberSignOnly", match: matchNumber, input: "+x", want: 0},
		{name: "WordsLongest", match: matchWords("delim", "delimiter"), input: "DELIMITER ", want: 9},
		{name: "WordsShort", match: matchWords("delim", "delimiter"), input: "delim ", want: 5},
		{name: "SpaceRun", match: matchSpace, input: " \t\r\n x", want: 5},
		{name: "BlankStopsAtNewline", match: matchBlank, input: " \t\n", want: 2},
		{name: "NewlineCRLF", match: matchNewline, input: "\r\n", want: 2},
		{name: "NewlineLoneCR", match: matchNewline, input: "\rx", want: 0},
		{name: "RestOfLine", match: matchRestOfLine, input: "abc\ndef", want: 3},
		{name: "RestOfLineAtEOF", match: matchRestOfLine, input: "abc", want: 3},
		{name: "LineContentDropsCR", match: matchLineContent, input: "abc\r\n", want: 3},
		{name: "Comment", match: matchComment, input: "# x y\nz", want: 5},
		{name: "NotComment", match: matchComment, input: "x#", want: 0},
		{name: "NonBlank", match: matchNonBlank, input: "?'  ", want: 2},
		{name: "CharMultiByte", match: matchChar, input: "€", want: 3},
		{name: "BOM", match: matchExact(bom), input: "\xEF\xBB\xBFbox", want: 3},
		{name: "Symbol", match: matchOneOf(",(){}"), input: "}", want: 1},
		{name: "NotSymbol", match: matchOneOf(",(){}"), input: "[", want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.match([]byte(tc.input), 0))
		})
	}
}

func TestMatchEndSample_OnlyAtTerminatorKeyword(t *testing.T) {
	in := []byte("x\n  ends\n")

	require.Equal(t, 0, matchEndSample(in, 0))
	require.Equal(t, 0, matchEndSample(in, 2))
	require.Equal(t, 4, matchEndSample(in, 4))
}
