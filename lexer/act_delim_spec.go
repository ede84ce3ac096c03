package lexer

import (
	"github.com/chorpler/boxes/token"
)

// actDelimSpec applies the delimiter specification following the 'delimiter' keyword.
// Whether it is valid or not, the scanner returns to the box body.
func actDelimSpec(ac *actionContext) (tok token.Token, stride int, v verdict) {
	ac.s.begin(InBox)

	spec := ac.text()
	if err := ac.s.ChangeDelimiters(string(spec)); err != nil {
		return ac.token(token.KindUnrecognized, token.Payload{}), ac.Width, accept
	}

	return ac.token(token.KindDelimSpec, token.NewText(ac.s.decode(spec))), ac.Width, accept
}
