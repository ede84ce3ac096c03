package token

// Kind defines the class of a [Token] as seen by the parser.
type Kind int

const (
	// KindEOF signals that the input is exhausted. It is returned for every call after the end is reached.
	KindEOF Kind = iota

	// KindUnrecognized is the recognition-failure token. It replaces any token which could not be scanned,
	// e.g. an unterminated string, an empty sample block or an invalid delimiter specification.
	KindUnrecognized

	KindParent
	KindFilename
	KindBox
	KindEnd
	KindSample
	KindEndSample
	KindElastic
	KindShapes
	KindReplace
	KindReverse
	KindPadding
	KindTo
	KindWith
	KindTags

	// KindChangeDelim is the 'delimiter' (or 'delim') keyword.
	KindChangeDelim

	// KindDelimSpec carries the two-character delimiter specification after the 'delimiter' keyword.
	// The new delimiters are already in effect when the parser receives this token.
	KindDelimSpec

	// KindRegexFlag is either 'global' or 'once', with the flag character as payload.
	KindRegexFlag

	// KindKeyword is one of the design metadata keywords, e.g. 'author' or 'revdate'.
	KindKeyword

	KindShape

	// KindWord is a free word which may contain non-ASCII letters. Payload is decoded text.
	KindWord

	// KindASCIIID is a free word of ASCII letters, digits, '_' and '-'. Payload is the raw text.
	KindASCIIID

	KindNumber
	KindString

	// KindSymbol is one of the single-char punctuation symbols ',', '(', ')', '{' or '}'.
	KindSymbol

	NumKinds
)

var kindNames = [NumKinds]string{
	KindEOF:          "EOF",
	KindUnrecognized: "UNRECOGNIZED",
	KindParent:       "PARENT",
	KindFilename:     "FILENAME",
	KindBox:          "BOX",
	KindEnd:          "END",
	KindSample:       "SAMPLE",
	KindEndSample:    "ENDSAMPLE",
	KindElastic:      "ELASTIC",
	KindShapes:       "SHAPES",
	KindReplace:      "REPLACE",
	KindReverse:      "REVERSE",
	KindPadding:      "PADDING",
	KindTo:           "TO",
	KindWith:         "WITH",
	KindTags:         "TAGS",
	KindChangeDelim:  "CHGDEL",
	KindDelimSpec:    "DELIMSPEC",
	KindRegexFlag:    "RXPFLAG",
	KindKeyword:      "KEYWORD",
	KindShape:        "SHAPE",
	KindWord:         "WORD",
	KindASCIIID:      "ASCII_ID",
	KindNumber:       "NUMBER",
	KindString:       "STRING",
	KindSymbol:       "SYMBOL",
}

func (k Kind) String() string {
	if k < 0 || k >= NumKinds {
		return "INVALID"
	}
	return kindNames[k]
}

// MarshalText makes kinds appear by name in serialized token dumps.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
