// Package token defines the lexical units produced by the configuration scanner.
package token

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/chorpler/boxes/shape"
)

// PayloadType tells which field of the [Payload] is meaningful.
type PayloadType int

const (
	PayloadNone PayloadType = iota
	PayloadText
	PayloadChar
	PayloadInt
	PayloadShape
)

// Payload is the typed value a [Token] may carry. At most one of the value fields is set,
// as indicated by Type.
type Payload struct {
	Type PayloadType

	// Text is decoded text for words, strings, samples and filenames, or raw ASCII for ASCII identifiers
	// and metadata keywords.
	Text string

	Char  rune
	Int   int
	Shape shape.Shape
}

// Token is a single lexical unit of the configuration file.
// Tokens are values and are never modified after they're produced.
type Token struct {
	Kind Kind `json:"kind"`

	// Line is the 1-based line number of the token's first byte.
	Line int `json:"line"`

	// Pos is the byte offset of the token's first byte in the input.
	Pos int `json:"pos"`

	Payload Payload `json:"payload"`
}

func NewText(text string) Payload {
	return Payload{Type: PayloadText, Text: text}
}

func NewChar(c rune) Payload {
	return Payload{Type: PayloadChar, Char: c}
}

func NewInt(n int) Payload {
	return Payload{Type: PayloadInt, Int: n}
}

func NewShape(s shape.Shape) Payload {
	return Payload{Type: PayloadShape, Shape: s}
}

// Text returns the text payload, or an empty string if the token carries none.
func (t Token) Text() string {
	if t.Payload.Type != PayloadText {
		return ""
	}
	return t.Payload.Text
}

func (p Payload) String() string {
	switch p.Type {
	case PayloadText:
		return strconv.Quote(p.Text)
	case PayloadChar:
		return strconv.QuoteRune(p.Char)
	case PayloadInt:
		return strconv.Itoa(p.Int)
	case PayloadShape:
		return p.Shape.String()
	default:
		return ""
	}
}

// MarshalJSON writes only the field selected by the payload type.
func (p Payload) MarshalJSON() ([]byte, error) {
	switch p.Type {
	case PayloadText:
		return json.Marshal(map[string]string{"text": p.Text})
	case PayloadChar:
		return json.Marshal(map[string]string{"char": string(p.Char)})
	case PayloadInt:
		return json.Marshal(map[string]int{"int": p.Int})
	case PayloadShape:
		return json.Marshal(map[string]string{"shape": p.Shape.String()})
	default:
		return []byte("{}"), nil
	}
}

func (t Token) String() string {
	if t.Payload.Type == PayloadNone {
		return fmt.Sprintf("%d:%s", t.Line, t.Kind)
	}
	return fmt.Sprintf("%d:%s(%s)", t.Line, t.Kind, t.Payload)
}
