package lexer

import (
	"github.com/chorpler/boxes/token"
)

// verdict tells the scan loop what an action did with the matched input.
type verdict int

const (
	// accept means the action produced a token.
	accept verdict = iota

	// skip means the input was consumed without producing a token.
	skip

	// reject means the action declined the match. Nothing is consumed and the next best rule is tried.
	reject
)

// actionContext is the input of an [action]: the session and the bounds of the matched text.
type actionContext struct {
	s *Session

	Input []byte

	// Idx is the position of the first matched byte.
	Idx int

	// Width is the number of matched bytes.
	Width int
}

// action processes the text matched by its rule and returns a token, the number of bytes actually consumed
// and a verdict. The stride may be shorter than the match, which hands the rest back to the next scan.
type action func(ac *actionContext) (tok token.Token, stride int, v verdict)

// text returns the matched bytes.
func (ac *actionContext) text() []byte {
	return ac.Input[ac.Idx : ac.Idx+ac.Width]
}

// token creates a token positioned at the start of the match.
func (ac *actionContext) token(kind token.Kind, payload token.Payload) token.Token {
	return token.Token{
		Kind:    kind,
		Line:    ac.s.line,
		Pos:     ac.Idx,
		Payload: payload,
	}
}

// fail reports a diagnostic about the match and returns the recognition-failure token.
func (ac *actionContext) fail(issue Issue, text, description string) token.Token {
	ac.s.report(Diagnostic{
		Issue:       issue,
		Line:        ac.s.line,
		Pos:         ac.Idx,
		Text:        text,
		Description: description,
	})

	return ac.token(token.KindUnrecognized, token.Payload{})
}
